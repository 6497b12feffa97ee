package fleet

import (
	"testing"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1D23", NormalizePlate("  abc 1d23 "))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestFuelTotal_ArredondaCentavos(t *testing.T) {
	got := FuelTotal(decimal.RequireFromString("40.5"), decimal.RequireFromString("5.899"))
	assert.Equal(t, "238.91", got.StringFixed(2))
}

func TestSummarize(t *testing.T) {
	mk := func(plate string, liters, total string, odo int64) *entity.FuelLog {
		return &entity.FuelLog{
			Plate: plate, Odometer: odo,
			Liters: decimal.RequireFromString(liters), Total: decimal.RequireFromString(total),
		}
	}
	s := Summarize([]*entity.FuelLog{
		mk("AAA1111", "40", "240", 10000),
		mk("AAA1111", "40", "240", 10500),
		mk("BBB2222", "20", "120", 0),
	})

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "100", s.Liters.String())
	assert.Equal(t, "600", s.Amount.String())
	assert.Equal(t, "6", s.AvgPrice.String())
	assert.Equal(t, int64(500), s.DistanceKm)
	assert.Equal(t, "5", s.KmPerLiter.String())
	require.Len(t, s.ByPlate, 2)
	assert.Equal(t, "AAA1111", s.ByPlate[0].Plate)
	assert.Equal(t, int64(500), s.ByPlate[0].DistanceKm)
	assert.Equal(t, 1, s.ByPlate[1].Count)
}

func TestSummarize_Vazio(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Count)
	assert.True(t, s.AvgPrice.IsZero())
	assert.Empty(t, s.ByPlate)
}
