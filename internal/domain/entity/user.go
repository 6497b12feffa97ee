package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleViewer     = "viewer"
)

// ValidRole indica se r é um papel conhecido.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleManager, RoleViewer:
		return true
	}
	return false
}

// SeesFinance papéis com acesso ao financeiro.
func SeesFinance(r string) bool {
	return r == RoleAdmin || r == RoleManager
}

// User representa um usuário do back-office.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	Phone        string
	Role         string
	Active       bool
	PasswordHash string // bcrypt; nunca sai da API
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
