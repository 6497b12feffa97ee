package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/campaign"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
)

// ActionUseCase ações promocionais (campanhas).
type ActionUseCase struct {
	repo    repository.ActionRepository
	clients repository.ClientRepository
}

func NewActionUseCase(repo repository.ActionRepository, clients repository.ClientRepository) *ActionUseCase {
	return &ActionUseCase{repo: repo, clients: clients}
}

func (uc *ActionUseCase) filtered(ctx context.Context, p query.Params) ([]*entity.Action, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	status := p.Status
	if status != "" {
		if st, ok := campaign.NormalizeStatus(status); ok {
			status = st
		}
	}
	typ := p.Get("type")
	items := query.Filter(all, func(a *entity.Action) bool {
		fields := append([]string{a.ClientName, a.CompanyName, a.Supervisor, a.Notes}, a.Types...)
		fields = append(fields, a.Team...)
		return query.MatchText(p.Text, fields...) &&
			query.MatchEqual(status, a.Status) &&
			query.MatchEqual(p.Get("client_id"), a.ClientID) &&
			hasType(a, typ) &&
			p.MatchDate(a.StartDate)
	})
	byDateDesc(items, func(a *entity.Action) time.Time { return a.StartDate }, func(a *entity.Action) time.Time { return a.CreatedAt })
	return items, nil
}

// hasType casa o filtro com a tag crua ou com a categoria normalizada.
func hasType(a *entity.Action, typ string) bool {
	if typ == "" {
		return true
	}
	for _, t := range a.Types {
		if query.MatchEqual(typ, t) || query.MatchEqual(typ, campaign.NormalizeServiceType(t)) {
			return true
		}
	}
	return false
}

func (uc *ActionUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.ActionResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toActionResponse), p), nil
}

func (uc *ActionUseCase) GetByID(ctx context.Context, id string) (*dto.ActionResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	out := toActionResponse(a)
	return &out, nil
}

func (uc *ActionUseCase) Create(ctx context.Context, in dto.ActionRequest) (*dto.ActionResponse, error) {
	now := time.Now()
	a := &entity.Action{ID: uuid.New().String(), Status: entity.ActionStatusAberta, CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, a, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	out := toActionResponse(a)
	return &out, nil
}

func (uc *ActionUseCase) Update(ctx context.Context, id string, in dto.ActionRequest) (*dto.ActionResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, a, in); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	out := toActionResponse(a)
	return &out, nil
}

func (uc *ActionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ActionUseCase) apply(ctx context.Context, a *entity.Action, in dto.ActionRequest) error {
	setString(&a.ClientID, in.ClientID)
	setString(&a.ClientName, in.ClientName)
	setString(&a.CompanyName, in.CompanyName)
	setString(&a.StartTime, in.StartTime)
	setString(&a.EndTime, in.EndTime)
	setString(&a.MaterialPhotoURL, in.MaterialPhotoURL)
	setString(&a.Supervisor, in.Supervisor)
	setString(&a.Notes, in.Notes)
	setNumber(&a.MaterialQty, in.MaterialQty)
	if in.Types != nil {
		a.Types = cleanList(in.Types)
	}
	if in.Team != nil {
		a.Team = cleanList(in.Team)
	}
	if in.DayPeriods != nil {
		periods := make([]string, 0, len(in.DayPeriods))
		for _, raw := range cleanList(in.DayPeriods) {
			dp, ok := campaign.NormalizeDayPeriod(raw)
			if !ok {
				return invalid("período inválido: %q", raw)
			}
			periods = append(periods, dp)
		}
		a.DayPeriods = periods
	}
	if in.Status != nil {
		st, ok := campaign.NormalizeStatus(*in.Status)
		if !ok {
			return invalid("status de ação inválido: %q", *in.Status)
		}
		a.Status = st
	}
	if in.StartDate != nil {
		d, err := parseDate("data de início", *in.StartDate)
		if err != nil {
			return err
		}
		a.StartDate = d
	}
	if in.EndDate != nil {
		d, err := optionalDate("data de término", in.EndDate)
		if err != nil {
			return err
		}
		a.EndDate = d
	}

	if a.ClientID != "" && uc.clients != nil {
		c, err := uc.clients.GetByID(ctx, a.ClientID)
		if err != nil {
			return err
		}
		if c == nil {
			return invalid("cliente não encontrado: %s", a.ClientID)
		}
		if a.ClientName == "" {
			a.ClientName = c.Name
		}
		if a.CompanyName == "" {
			a.CompanyName = c.Company
		}
	}
	if a.ClientName == "" {
		return invalid("cliente é obrigatório")
	}
	if len(a.Types) == 0 {
		return invalid("informe ao menos um tipo de ação")
	}
	if a.StartDate.IsZero() {
		return invalid("data de início é obrigatória")
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return invalid("data de término anterior ao início")
	}
	if err := checkTime("horário de início", a.StartTime); err != nil {
		return err
	}
	if err := checkTime("horário de término", a.EndTime); err != nil {
		return err
	}
	if a.MaterialQty.IsNegative() {
		return invalid("quantidade de material não pode ser negativa")
	}
	return nil
}

// Stats contagem por status de todas as ações.
func (uc *ActionUseCase) Stats(ctx context.Context) (*dto.ActionStatsResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ActionStatsResponse{
		Total: len(all),
		ByStatus: map[string]int{
			entity.ActionStatusAberta:     0,
			entity.ActionStatusProcesso:   0,
			entity.ActionStatusFinalizado: 0,
			entity.ActionStatusCancelado:  0,
		},
	}
	for _, a := range all {
		out.ByStatus[a.Status]++
	}
	return out, nil
}

func toActionResponse(a *entity.Action) dto.ActionResponse {
	return dto.ActionResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		CompanyName:      a.CompanyName,
		Types:            nonNil(a.Types),
		StartDate:        br.FormatISO(a.StartDate),
		StartTime:        a.StartTime,
		EndDate:          formatOptDate(a.EndDate),
		EndTime:          a.EndTime,
		DayPeriods:       nonNil(a.DayPeriods),
		MaterialQty:      br.NewNumber(a.MaterialQty),
		MaterialPhotoURL: a.MaterialPhotoURL,
		Supervisor:       a.Supervisor,
		Team:             nonNil(a.Team),
		Notes:            a.Notes,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
