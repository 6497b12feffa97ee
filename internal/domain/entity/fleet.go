package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle veículo da frota; a placa é a chave natural.
type Vehicle struct {
	ID        string
	Plate     string
	Model     string
	Brand     string
	Year      int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FuelLog abastecimento, ligado ao veículo apenas pela placa.
type FuelLog struct {
	ID            string
	Plate         string
	Vehicle       string
	Driver        string
	Date          time.Time
	Liters        decimal.Decimal
	PricePerLiter decimal.Decimal
	Total         decimal.Decimal
	Odometer      int64
	Station       string
	FuelType      string
	Invoice       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
