package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material registra uma entrega de material promocional (panfletos etc.) de um cliente.
type Material struct {
	ID          string
	Date        time.Time
	Quantity    decimal.Decimal
	ClientName  string
	Responsible string
	SampleURL   string
	ProtocolURL string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
