package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var (
	_ repository.VehicleRepository = (*VehicleRepo)(nil)
	_ repository.FuelLogRepository = (*FuelLogRepo)(nil)
)

// VehicleRepo frota; a placa tem índice único.
type VehicleRepo struct {
	q Querier
}

func NewVehicleRepository(q Querier) *VehicleRepo { return &VehicleRepo{q: q} }

const vehicleColumns = `id, plate, model, brand, year, active, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := row.Scan(&v.ID, &v.Plate, &v.Model, &v.Brand, &v.Year, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx, `INSERT INTO vehicles (`+vehicleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.Plate, v.Model, v.Brand, v.Year, v.Active, v.CreatedAt, v.UpdatedAt)
	return wrapErr("insert vehicle", err)
}

func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := queryOne(ctx, r.q, scanVehicle, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepo) GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error) {
	v, err := queryOne(ctx, r.q, scanVehicle, `SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1`, plate)
	if err != nil {
		return nil, fmt.Errorf("get vehicle by plate: %w", err)
	}
	return v, nil
}

func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	list, err := queryAll(ctx, r.q, scanVehicle, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY plate`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return list, nil
}

func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	return wrapErr("update vehicle", execOne(ctx, r.q,
		`UPDATE vehicles SET plate = $2, model = $3, brand = $4, year = $5, active = $6, updated_at = $7 WHERE id = $1`,
		v.ID, v.Plate, v.Model, v.Brand, v.Year, v.Active, v.UpdatedAt))
}

func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete vehicle", execOne(ctx, r.q, `DELETE FROM vehicles WHERE id = $1`, id))
}

type FuelLogRepo struct {
	q Querier
}

func NewFuelLogRepository(q Querier) *FuelLogRepo { return &FuelLogRepo{q: q} }

const fuelLogColumns = `id, plate, vehicle, driver, date, liters, price_per_liter, total, odometer, station, fuel_type,
	invoice, notes, created_at, updated_at`

func scanFuelLog(row pgx.Row) (*entity.FuelLog, error) {
	var l entity.FuelLog
	if err := row.Scan(&l.ID, &l.Plate, &l.Vehicle, &l.Driver, &l.Date, &l.Liters, &l.PricePerLiter, &l.Total,
		&l.Odometer, &l.Station, &l.FuelType, &l.Invoice, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *FuelLogRepo) Create(ctx context.Context, l *entity.FuelLog) error {
	query := `
		INSERT INTO fuel_logs (` + fuelLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, l.ID, l.Plate, l.Vehicle, l.Driver, l.Date, l.Liters, l.PricePerLiter, l.Total,
		l.Odometer, l.Station, l.FuelType, l.Invoice, l.Notes, l.CreatedAt, l.UpdatedAt)
	return wrapErr("insert fuel log", err)
}

func (r *FuelLogRepo) GetByID(ctx context.Context, id string) (*entity.FuelLog, error) {
	l, err := queryOne(ctx, r.q, scanFuelLog, `SELECT `+fuelLogColumns+` FROM fuel_logs WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get fuel log: %w", err)
	}
	return l, nil
}

func (r *FuelLogRepo) List(ctx context.Context) ([]*entity.FuelLog, error) {
	list, err := queryAll(ctx, r.q, scanFuelLog, `SELECT `+fuelLogColumns+` FROM fuel_logs ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list fuel logs: %w", err)
	}
	return list, nil
}

func (r *FuelLogRepo) Update(ctx context.Context, l *entity.FuelLog) error {
	query := `
		UPDATE fuel_logs SET plate = $2, vehicle = $3, driver = $4, date = $5, liters = $6, price_per_liter = $7,
			total = $8, odometer = $9, station = $10, fuel_type = $11, invoice = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	return wrapErr("update fuel log", execOne(ctx, r.q, query, l.ID, l.Plate, l.Vehicle, l.Driver, l.Date, l.Liters,
		l.PricePerLiter, l.Total, l.Odometer, l.Station, l.FuelType, l.Invoice, l.Notes, l.UpdatedAt))
}

func (r *FuelLogRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete fuel log", execOne(ctx, r.q, `DELETE FROM fuel_logs WHERE id = $1`, id))
}
