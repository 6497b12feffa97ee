package repository

import (
	"context"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

// VehicleRepository porta de persistência da frota.
type VehicleRepository interface {
	CRUD[entity.Vehicle]
	GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error)
}

type FuelLogRepository interface {
	CRUD[entity.FuelLog]
}
