package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
)

// MaterialUseCase entregas de material promocional.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (uc *MaterialUseCase) filtered(ctx context.Context, p query.Params) ([]*entity.Material, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(m *entity.Material) bool {
		return query.MatchText(p.Text, m.ClientName, m.Responsible, m.Notes) &&
			query.MatchEqual(p.Get("client"), m.ClientName) &&
			p.MatchDate(m.Date)
	})
	byDateDesc(items, func(m *entity.Material) time.Time { return m.Date }, func(m *entity.Material) time.Time { return m.CreatedAt })
	return items, nil
}

func (uc *MaterialUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.MaterialResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toMaterialResponse), p), nil
}

func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMaterialResponse(m)
	return &out, nil
}

func (uc *MaterialUseCase) Create(ctx context.Context, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	now := time.Now()
	m := &entity.Material{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := applyMaterial(m, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyMaterial(m, in); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyMaterial(m *entity.Material, in dto.MaterialRequest) error {
	if in.Date != nil {
		d, err := parseDate("data", *in.Date)
		if err != nil {
			return err
		}
		m.Date = d
	}
	setNumber(&m.Quantity, in.Quantity)
	setString(&m.ClientName, in.ClientName)
	setString(&m.Responsible, in.Responsible)
	setString(&m.SampleURL, in.SampleURL)
	setString(&m.ProtocolURL, in.ProtocolURL)
	setString(&m.Notes, in.Notes)
	if m.Date.IsZero() {
		return invalid("data é obrigatória")
	}
	if !m.Quantity.IsPositive() {
		return invalid("quantidade deve ser maior que zero")
	}
	if m.ClientName == "" {
		return invalid("cliente é obrigatório")
	}
	return nil
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:          m.ID,
		Date:        br.FormatISO(m.Date),
		Quantity:    br.NewNumber(m.Quantity),
		ClientName:  m.ClientName,
		Responsible: m.Responsible,
		SampleURL:   m.SampleURL,
		ProtocolURL: m.ProtocolURL,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
