package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var vacancyStatuses = []string{entity.VacancyStatusAberta, entity.VacancyStatusAvaliacao, entity.VacancyStatusFechada}

// VacancyUseCase indicações para vagas.
type VacancyUseCase struct {
	repo repository.VacancyRepository
}

func NewVacancyUseCase(repo repository.VacancyRepository) *VacancyUseCase {
	return &VacancyUseCase{repo: repo}
}

func (uc *VacancyUseCase) filtered(ctx context.Context, p query.Params) ([]*entity.Vacancy, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(v *entity.Vacancy) bool {
		return query.MatchText(p.Text, v.IndicationName, v.Role, v.Client, v.Contact) &&
			query.MatchEqual(p.Status, v.Status) &&
			p.MatchDate(v.CreatedAt)
	})
	byDateDesc(items, func(v *entity.Vacancy) time.Time { return v.CreatedAt }, func(v *entity.Vacancy) time.Time { return v.UpdatedAt })
	return items, nil
}

func (uc *VacancyUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.VacancyResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toVacancyResponse), p), nil
}

func (uc *VacancyUseCase) GetByID(ctx context.Context, id string) (*dto.VacancyResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := toVacancyResponse(v)
	return &out, nil
}

func (uc *VacancyUseCase) Create(ctx context.Context, in dto.VacancyRequest) (*dto.VacancyResponse, error) {
	now := time.Now()
	v := &entity.Vacancy{ID: uuid.New().String(), Status: entity.VacancyStatusAberta, CreatedAt: now, UpdatedAt: now}
	if err := applyVacancy(v, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := toVacancyResponse(v)
	return &out, nil
}

func (uc *VacancyUseCase) Update(ctx context.Context, id string, in dto.VacancyRequest) (*dto.VacancyResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyVacancy(v, in); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	out := toVacancyResponse(v)
	return &out, nil
}

func (uc *VacancyUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyVacancy(v *entity.Vacancy, in dto.VacancyRequest) error {
	setString(&v.IndicationName, in.IndicationName)
	setString(&v.Role, in.Role)
	setString(&v.Client, in.Client)
	setString(&v.Contact, in.Contact)
	setString(&v.Notes, in.Notes)
	if in.Status != nil {
		st, ok := normalizeVacancyStatus(*in.Status)
		if !ok {
			return invalid("status de vaga inválido: %q", *in.Status)
		}
		v.Status = st
	}
	if v.IndicationName == "" {
		return invalid("nome da indicação é obrigatório")
	}
	return nil
}

// normalizeVacancyStatus "" vira Aberta.
func normalizeVacancyStatus(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return entity.VacancyStatusAberta, true
	}
	for _, st := range vacancyStatuses {
		if query.MatchEqual(s, st) {
			return st, true
		}
	}
	return "", false
}

func toVacancyResponse(v *entity.Vacancy) dto.VacancyResponse {
	return dto.VacancyResponse{
		ID:             v.ID,
		IndicationName: v.IndicationName,
		Role:           v.Role,
		Client:         v.Client,
		Contact:        v.Contact,
		Notes:          v.Notes,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
