package entity

import "time"

const (
	ClientStatusAtivo    = "ativo"
	ClientStatusInativo  = "inativo"
	ClientStatusPendente = "pendente"
)

// Client representa um cliente da agência (empresa que contrata ações).
type Client struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Segment   string
	CPFCNPJ   string
	Address   string
	City      string
	State     string
	ZipCode   string
	Status    string
	Notes     string
	OwnerID   string // usuário que cadastrou; supervisores só enxergam os seus
	CreatedAt time.Time
	UpdatedAt time.Time
}
