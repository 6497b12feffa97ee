package usecase_test

import (
	"context"
	"testing"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFleet() *usecase.FleetUseCase {
	return usecase.NewFleetUseCase(memory.NewVehicleRepo(), memory.NewFuelLogRepo())
}

func TestFleetUseCase_PlacaDuplicadaConflita(t *testing.T) {
	uc := newFleet()
	ctx := context.Background()

	first, err := uc.CreateVehicle(ctx, dto.VehicleRequest{Plate: ptr("abc 1d23"), Model: ptr("Strada")})
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", first.Plate)
	assert.True(t, first.Active)

	_, err = uc.CreateVehicle(ctx, dto.VehicleRequest{Plate: ptr("ABC1D23")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	second, err := uc.CreateVehicle(ctx, dto.VehicleRequest{Plate: ptr("XYZ9A87")})
	require.NoError(t, err)
	_, err = uc.UpdateVehicle(ctx, second.ID, dto.VehicleRequest{Plate: ptr(" abc1d23 ")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	same, err := uc.UpdateVehicle(ctx, first.ID, dto.VehicleRequest{Model: ptr("Saveiro")})
	require.NoError(t, err)
	assert.Equal(t, "Saveiro", same.Model)
}

func TestFleetUseCase_AbastecimentoNormalizaPlacaECalculaTotal(t *testing.T) {
	uc := newFleet()
	ctx := context.Background()

	out, err := uc.CreateFuelLog(ctx, dto.FuelLogRequest{
		Plate:         ptr("abc 1d23"),
		Date:          ptr("10/03/2025"),
		Liters:        num("40"),
		PricePerLiter: num("5.899"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", out.Plate)
	assert.Equal(t, "Gasolina", out.FuelType)
	assert.Equal(t, "235.96", out.Total.String())

	list, err := uc.ListFuelLogs(ctx, dto.ListFilter{Extra: map[string]string{"plate": "abc1d23"}})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestFleetUseCase_AtualizacaoRecalculaTotal(t *testing.T) {
	uc := newFleet()
	ctx := context.Background()

	out, err := uc.CreateFuelLog(ctx, dto.FuelLogRequest{Plate: ptr("ABC1D23"), Date: ptr("2025-03-10"), Liters: num("10"), PricePerLiter: num("6")})
	require.NoError(t, err)
	require.Equal(t, "60", out.Total.String())

	upd, err := uc.UpdateFuelLog(ctx, out.ID, dto.FuelLogRequest{Liters: num("20")})
	require.NoError(t, err)
	assert.Equal(t, "120", upd.Total.String())

	informado, err := uc.UpdateFuelLog(ctx, out.ID, dto.FuelLogRequest{Total: num("99.90")})
	require.NoError(t, err)
	assert.Equal(t, "99.9", informado.Total.String())
}

func TestFleetUseCase_AbastecimentoValida(t *testing.T) {
	uc := newFleet()
	ctx := context.Background()

	_, err := uc.CreateFuelLog(ctx, dto.FuelLogRequest{Plate: ptr("ABC1D23"), Date: ptr("2025-03-10"), Liters: num("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateFuelLog(ctx, dto.FuelLogRequest{Date: ptr("2025-03-10"), Liters: num("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
