package dto

import (
	"time"

	"github.com/relampago/backoffice-api/pkg/br"
)

type VehicleRequest struct {
	Plate  *string `json:"plate"`
	Model  *string `json:"model"`
	Brand  *string `json:"brand"`
	Year   *int    `json:"year"`
	Active *bool   `json:"active"`
}

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
	Year      int       `json:"year"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FuelLogRequest total zero ou ausente é recalculado (litros × preço).
type FuelLogRequest struct {
	Plate         *string    `json:"plate"`
	Vehicle       *string    `json:"vehicle"`
	Driver        *string    `json:"driver"`
	Date          *string    `json:"date"`
	Liters        *br.Number `json:"liters"`
	PricePerLiter *br.Number `json:"price_per_liter"`
	Total         *br.Number `json:"total"`
	Odometer      *int64     `json:"odometer"`
	Station       *string    `json:"station"`
	FuelType      *string    `json:"fuel_type"`
	Invoice       *string    `json:"invoice"`
	Notes         *string    `json:"notes"`
}

type FuelLogResponse struct {
	ID            string    `json:"id"`
	Plate         string    `json:"plate"`
	Vehicle       string    `json:"vehicle"`
	Driver        string    `json:"driver"`
	Date          string    `json:"date"`
	Liters        br.Number `json:"liters"`
	PricePerLiter br.Number `json:"price_per_liter"`
	Total         br.Number `json:"total"`
	Odometer      int64     `json:"odometer"`
	Station       string    `json:"station"`
	FuelType      string    `json:"fuel_type"`
	Invoice       string    `json:"invoice"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PlateSummaryResponse struct {
	Plate      string    `json:"plate"`
	Count      int       `json:"count"`
	Liters     br.Number `json:"liters"`
	Amount     br.Number `json:"amount"`
	DistanceKm int64     `json:"distance_km"`
}

type FuelSummaryResponse struct {
	Count      int                    `json:"count"`
	Liters     br.Number              `json:"liters"`
	Amount     br.Number              `json:"amount"`
	AvgPrice   br.Number              `json:"avg_price"`
	DistanceKm int64                  `json:"distance_km"`
	KmPerLiter br.Number              `json:"km_per_liter"`
	ByPlate    []PlateSummaryResponse `json:"by_plate"`
}
