package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ActionStatusAberta     = "em aberto"
	ActionStatusProcesso   = "em processo"
	ActionStatusFinalizado = "finalizado"
	ActionStatusCancelado  = "cancelado"
)

// Action é uma ação promocional (campanha) executada para um cliente.
type Action struct {
	ID               string
	ClientID         string // opcional
	ClientName       string
	CompanyName      string
	Types            []string
	StartDate        time.Time
	StartTime        string // HH:MM
	EndDate          *time.Time
	EndTime          string
	DayPeriods       []string
	MaterialQty      decimal.Decimal
	MaterialPhotoURL string
	Supervisor       string
	Team             []string
	Notes            string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
