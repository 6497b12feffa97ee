package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/fleet"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
)

// FleetUseCase veículos e abastecimentos.
type FleetUseCase struct {
	vehicles repository.VehicleRepository
	fuel     repository.FuelLogRepository
}

func NewFleetUseCase(vehicles repository.VehicleRepository, fuel repository.FuelLogRepository) *FleetUseCase {
	return &FleetUseCase{vehicles: vehicles, fuel: fuel}
}

// ─── Veículos ────────────────────────────────────────────────────────────────

func (uc *FleetUseCase) ListVehicles(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.VehicleResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	all, err := uc.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(v *entity.Vehicle) bool {
		return query.MatchText(p.Text, v.Plate, v.Model, v.Brand) && matchActive(p.Status, v.Active)
	})
	byName(items, func(v *entity.Vehicle) string { return v.Plate })
	return paginate(mapAll(items, toVehicleResponse), p), nil
}

func (uc *FleetUseCase) GetVehicle(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := uc.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := toVehicleResponse(v)
	return &out, nil
}

func (uc *FleetUseCase) CreateVehicle(ctx context.Context, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	now := time.Now()
	v := &entity.Vehicle{ID: uuid.New().String(), Active: true, CreatedAt: now, UpdatedAt: now}
	if err := uc.applyVehicle(ctx, v, in); err != nil {
		return nil, err
	}
	if err := uc.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	out := toVehicleResponse(v)
	return &out, nil
}

func (uc *FleetUseCase) UpdateVehicle(ctx context.Context, id string, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyVehicle(ctx, v, in); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now()
	if err := uc.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	out := toVehicleResponse(v)
	return &out, nil
}

func (uc *FleetUseCase) DeleteVehicle(ctx context.Context, id string) error {
	return uc.vehicles.Delete(ctx, id)
}

func (uc *FleetUseCase) applyVehicle(ctx context.Context, v *entity.Vehicle, in dto.VehicleRequest) error {
	if in.Plate != nil {
		v.Plate = fleet.NormalizePlate(*in.Plate)
	}
	setString(&v.Model, in.Model)
	setString(&v.Brand, in.Brand)
	if in.Year != nil {
		v.Year = *in.Year
	}
	if in.Active != nil {
		v.Active = *in.Active
	}
	if v.Plate == "" {
		return invalid("placa é obrigatória")
	}
	if v.Year != 0 && (v.Year < 1950 || v.Year > time.Now().Year()+1) {
		return invalid("ano inválido: %d", v.Year)
	}
	other, err := uc.vehicles.GetByPlate(ctx, v.Plate)
	if err != nil {
		return err
	}
	if other != nil && other.ID != v.ID {
		return fmt.Errorf("%w: placa já cadastrada: %s", domain.ErrConflict, v.Plate)
	}
	return nil
}

// ─── Abastecimentos ──────────────────────────────────────────────────────────

func (uc *FleetUseCase) filteredFuel(ctx context.Context, p query.Params) ([]*entity.FuelLog, error) {
	all, err := uc.fuel.List(ctx)
	if err != nil {
		return nil, err
	}
	plate := fleet.NormalizePlate(p.Get("plate"))
	items := query.Filter(all, func(l *entity.FuelLog) bool {
		return query.MatchText(p.Text, l.Plate, l.Vehicle, l.Driver, l.Station, l.Invoice) &&
			(plate == "" || l.Plate == plate) &&
			query.MatchEqual(p.Get("fuel_type"), l.FuelType) &&
			p.MatchDate(l.Date)
	})
	byDateDesc(items, func(l *entity.FuelLog) time.Time { return l.Date }, func(l *entity.FuelLog) time.Time { return l.CreatedAt })
	return items, nil
}

func (uc *FleetUseCase) ListFuelLogs(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.FuelLogResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filteredFuel(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toFuelLogResponse), p), nil
}

func (uc *FleetUseCase) GetFuelLog(ctx context.Context, id string) (*dto.FuelLogResponse, error) {
	l, err := uc.fuel.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	out := toFuelLogResponse(l)
	return &out, nil
}

func (uc *FleetUseCase) CreateFuelLog(ctx context.Context, in dto.FuelLogRequest) (*dto.FuelLogResponse, error) {
	now := time.Now()
	l := &entity.FuelLog{ID: uuid.New().String(), FuelType: fleet.DefaultFuelType, CreatedAt: now, UpdatedAt: now}
	if err := applyFuelLog(l, in); err != nil {
		return nil, err
	}
	if err := uc.fuel.Create(ctx, l); err != nil {
		return nil, err
	}
	out := toFuelLogResponse(l)
	return &out, nil
}

func (uc *FleetUseCase) UpdateFuelLog(ctx context.Context, id string, in dto.FuelLogRequest) (*dto.FuelLogResponse, error) {
	l, err := uc.fuel.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyFuelLog(l, in); err != nil {
		return nil, err
	}
	l.UpdatedAt = time.Now()
	if err := uc.fuel.Update(ctx, l); err != nil {
		return nil, err
	}
	out := toFuelLogResponse(l)
	return &out, nil
}

func (uc *FleetUseCase) DeleteFuelLog(ctx context.Context, id string) error {
	return uc.fuel.Delete(ctx, id)
}

// FuelSummary indicadores sobre os mesmos filtros da listagem (sem paginação).
func (uc *FleetUseCase) FuelSummary(ctx context.Context, f dto.ListFilter) (*dto.FuelSummaryResponse, error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filteredFuel(ctx, p)
	if err != nil {
		return nil, err
	}
	s := fleet.Summarize(items)
	out := &dto.FuelSummaryResponse{
		Count:      s.Count,
		Liters:     br.NewNumber(s.Liters),
		Amount:     br.NewNumber(s.Amount),
		AvgPrice:   br.NewNumber(s.AvgPrice),
		DistanceKm: s.DistanceKm,
		KmPerLiter: br.NewNumber(s.KmPerLiter),
		ByPlate:    make([]dto.PlateSummaryResponse, 0, len(s.ByPlate)),
	}
	for _, ps := range s.ByPlate {
		out.ByPlate = append(out.ByPlate, dto.PlateSummaryResponse{
			Plate:      ps.Plate,
			Count:      ps.Count,
			Liters:     br.NewNumber(ps.Liters),
			Amount:     br.NewNumber(ps.Amount),
			DistanceKm: ps.DistanceKm,
		})
	}
	return out, nil
}

func applyFuelLog(l *entity.FuelLog, in dto.FuelLogRequest) error {
	if in.Plate != nil {
		l.Plate = fleet.NormalizePlate(*in.Plate)
	}
	setString(&l.Vehicle, in.Vehicle)
	setString(&l.Driver, in.Driver)
	setString(&l.Station, in.Station)
	setString(&l.FuelType, in.FuelType)
	setString(&l.Invoice, in.Invoice)
	setString(&l.Notes, in.Notes)
	setNumber(&l.Liters, in.Liters)
	setNumber(&l.PricePerLiter, in.PricePerLiter)
	if in.Odometer != nil {
		l.Odometer = *in.Odometer
	}
	if in.Date != nil {
		d, err := parseDate("data", *in.Date)
		if err != nil {
			return err
		}
		l.Date = d
	}
	if l.FuelType == "" {
		l.FuelType = fleet.DefaultFuelType
	}
	if l.Plate == "" {
		return invalid("placa é obrigatória")
	}
	if l.Date.IsZero() {
		return invalid("data é obrigatória")
	}
	if !l.Liters.IsPositive() {
		return invalid("litros deve ser maior que zero")
	}
	if l.PricePerLiter.IsNegative() || l.Odometer < 0 {
		return invalid("valores negativos não são aceitos")
	}
	// total informado prevalece; zero ou ausente é recalculado
	total := number(in.Total)
	if total.IsPositive() {
		l.Total = total
	} else if in.Total != nil || l.Total.IsZero() || in.Liters != nil || in.PricePerLiter != nil {
		l.Total = fleet.FuelTotal(l.Liters, l.PricePerLiter)
	}
	return nil
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		Brand:     v.Brand,
		Year:      v.Year,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toFuelLogResponse(l *entity.FuelLog) dto.FuelLogResponse {
	return dto.FuelLogResponse{
		ID:            l.ID,
		Plate:         l.Plate,
		Vehicle:       l.Vehicle,
		Driver:        l.Driver,
		Date:          br.FormatISO(l.Date),
		Liters:        br.NewNumber(l.Liters),
		PricePerLiter: br.NewNumber(l.PricePerLiter),
		Total:         br.NewNumber(l.Total),
		Odometer:      l.Odometer,
		Station:       l.Station,
		FuelType:      l.FuelType,
		Invoice:       l.Invoice,
		Notes:         l.Notes,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
