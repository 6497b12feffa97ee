// Package fleet regras da frota: placa normalizada, total de abastecimento e consumo.
package fleet

import (
	"sort"
	"strings"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultFuelType combustível assumido quando não informado.
const DefaultFuelType = "Gasolina"

// NormalizePlate remove espaços e coloca em maiúsculas ("abc 1d23" -> "ABC1D23").
func NormalizePlate(p string) string {
	return strings.ToUpper(strings.Join(strings.Fields(p), ""))
}

// FuelTotal litros × preço, arredondado a centavos.
func FuelTotal(liters, price decimal.Decimal) decimal.Decimal {
	return liters.Mul(price).Round(2)
}

// FuelSummary indicadores dos abastecimentos filtrados.
type FuelSummary struct {
	Count      int
	Liters     decimal.Decimal
	Amount     decimal.Decimal
	AvgPrice   decimal.Decimal // valor / litros
	DistanceKm int64           // Σ por placa de (maior - menor hodômetro)
	KmPerLiter decimal.Decimal
	ByPlate    []PlateSummary
}

// PlateSummary totais de uma placa.
type PlateSummary struct {
	Plate      string
	Count      int
	Liters     decimal.Decimal
	Amount     decimal.Decimal
	DistanceKm int64
}

// Summarize agrega os abastecimentos. Hodômetro zero é ignorado na distância.
func Summarize(logs []*entity.FuelLog) FuelSummary {
	s := FuelSummary{Liters: decimal.Zero, Amount: decimal.Zero, AvgPrice: decimal.Zero, KmPerLiter: decimal.Zero}
	type span struct{ min, max int64 }
	spans := map[string]*span{}
	plates := map[string]*PlateSummary{}

	for _, l := range logs {
		s.Count++
		s.Liters = s.Liters.Add(l.Liters)
		s.Amount = s.Amount.Add(l.Total)

		ps, ok := plates[l.Plate]
		if !ok {
			ps = &PlateSummary{Plate: l.Plate, Liters: decimal.Zero, Amount: decimal.Zero}
			plates[l.Plate] = ps
		}
		ps.Count++
		ps.Liters = ps.Liters.Add(l.Liters)
		ps.Amount = ps.Amount.Add(l.Total)

		if l.Odometer <= 0 {
			continue
		}
		sp, ok := spans[l.Plate]
		if !ok {
			spans[l.Plate] = &span{min: l.Odometer, max: l.Odometer}
			continue
		}
		if l.Odometer < sp.min {
			sp.min = l.Odometer
		}
		if l.Odometer > sp.max {
			sp.max = l.Odometer
		}
	}

	for plate, sp := range spans {
		dist := sp.max - sp.min
		s.DistanceKm += dist
		plates[plate].DistanceKm = dist
	}
	if s.Liters.IsPositive() {
		s.AvgPrice = s.Amount.Div(s.Liters).Round(3)
		s.KmPerLiter = decimal.NewFromInt(s.DistanceKm).Div(s.Liters).Round(2)
	}

	s.ByPlate = make([]PlateSummary, 0, len(plates))
	for _, ps := range plates {
		s.ByPlate = append(s.ByPlate, *ps)
	}
	sort.Slice(s.ByPlate, func(i, j int) bool { return s.ByPlate[i].Plate < s.ByPlate[j].Plate })
	return s
}
