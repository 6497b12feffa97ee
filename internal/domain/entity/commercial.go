package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommercialRecord entrada do funil comercial.
type CommercialRecord struct {
	ID        string
	Name      string
	Company   string
	Phone     string
	Email     string
	Stage     string
	Value     decimal.Decimal
	Source    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	OrderStatusAberta    = "Aberta"
	OrderStatusAndamento = "Em andamento"
	OrderStatusConcluida = "Concluída"
	OrderStatusCancelada = "Cancelada"

	DefaultOrderTitle      = "Ordem de Serviço"
	DefaultCommercialStage = "Novo"
)

// OrderItem linha de uma ordem de serviço.
type OrderItem struct {
	Description string          `json:"descricao"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitValue   decimal.Decimal `json:"valor_unit"`
}

// Subtotal quantidade × valor unitário.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitValue)
}

// Order ordem de serviço comercial.
type Order struct {
	ID          string
	Client      string
	Title       string
	Description string
	Status      string
	Date        time.Time
	Items       []OrderItem
	Total       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
