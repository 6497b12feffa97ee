package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/finance"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
	"github.com/shopspring/decimal"
)

// AccountUseCase contas a pagar e a receber. O kind vem da rota.
type AccountUseCase struct {
	repo  repository.AccountRepository
	clock Clock
}

func NewAccountUseCase(repo repository.AccountRepository, clock Clock) *AccountUseCase {
	return &AccountUseCase{repo: repo, clock: clock}
}

func validKind(kind string) error {
	if kind != entity.AccountPayable && kind != entity.AccountReceivable {
		return invalid("tipo de conta inválido: %q", kind)
	}
	return nil
}

// filtered o filtro de status compara com o status derivado na data de hoje.
func (uc *AccountUseCase) filtered(ctx context.Context, kind string, p query.Params) ([]*entity.AccountEntry, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	var status finance.Status
	if p.Status != "" {
		st, ok := finance.ParseStatus(p.Status)
		if !ok {
			return nil, invalid("status inválido: %q", p.Status)
		}
		status = st
	}
	all, err := uc.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	today := uc.clock.Today()
	items := query.Filter(all, func(e *entity.AccountEntry) bool {
		return query.MatchText(p.Text, e.Description, e.Document, e.Counterparty, e.Category, e.Notes) &&
			(status == "" || finance.EntryStatus(e, today) == status) &&
			query.MatchEqual(p.Get("category"), e.Category) &&
			p.MatchDate(e.DueDate)
	})
	byDateDesc(items, func(e *entity.AccountEntry) time.Time { return e.DueDate }, func(e *entity.AccountEntry) time.Time { return e.CreatedAt })
	return items, nil
}

func (uc *AccountUseCase) List(ctx context.Context, kind string, f dto.ListFilter) (*dto.ListResponse[dto.AccountEntryResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, kind, p)
	if err != nil {
		return nil, err
	}
	today := uc.clock.Today()
	return paginate(mapAll(items, func(e *entity.AccountEntry) dto.AccountEntryResponse { return toAccountResponse(e, today) }), p), nil
}

func (uc *AccountUseCase) get(ctx context.Context, kind, id string) (*entity.AccountEntry, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.Kind != kind {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (uc *AccountUseCase) GetByID(ctx context.Context, kind, id string) (*dto.AccountEntryResponse, error) {
	e, err := uc.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	out := toAccountResponse(e, uc.clock.Today())
	return &out, nil
}

func (uc *AccountUseCase) Create(ctx context.Context, kind string, in dto.AccountEntryRequest) (*dto.AccountEntryResponse, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.AccountEntry{ID: uuid.New().String(), Kind: kind, CreatedAt: now, UpdatedAt: now}
	if err := applyAccount(e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toAccountResponse(e, uc.clock.Today())
	return &out, nil
}

func (uc *AccountUseCase) Update(ctx context.Context, kind, id string, in dto.AccountEntryRequest) (*dto.AccountEntryResponse, error) {
	e, err := uc.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := applyAccount(e, in); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := toAccountResponse(e, uc.clock.Today())
	return &out, nil
}

func (uc *AccountUseCase) Delete(ctx context.Context, kind, id string) error {
	if _, err := uc.get(ctx, kind, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Summary indicadores das contas filtradas; canceladas ficam de fora.
func (uc *AccountUseCase) Summary(ctx context.Context, kind string, f dto.ListFilter) (*dto.AccountSummaryResponse, error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, kind, p)
	if err != nil {
		return nil, err
	}
	return toAccountSummary(finance.SummarizeAccounts(items, uc.clock.Today())), nil
}

func toAccountSummary(s finance.AccountSummary) *dto.AccountSummaryResponse {
	return &dto.AccountSummaryResponse{
		Count:         s.Count,
		Total:         br.NewNumber(s.Total),
		Settled:       br.NewNumber(s.Settled),
		Open:          br.NewNumber(s.Open),
		OverdueCount:  s.OverdueCount,
		OverdueAmount: br.NewNumber(s.OverdueAmount),
	}
}

func applyAccount(e *entity.AccountEntry, in dto.AccountEntryRequest) error {
	var err error
	if in.DueDate != nil {
		if e.DueDate, err = parseDate("data de vencimento", *in.DueDate); err != nil {
			return err
		}
	}
	if in.PaymentDate != nil {
		if e.PaymentDate, err = optionalDate("data de pagamento", in.PaymentDate); err != nil {
			return err
		}
	}
	setString(&e.Document, in.Document)
	setString(&e.Description, in.Description)
	setString(&e.Counterparty, in.Counterparty)
	setString(&e.Category, in.Category)
	setString(&e.Notes, in.Notes)
	setNumber(&e.Amount, in.Amount)
	setNumber(&e.AmountPaid, in.AmountPaid)
	if in.Cancelled != nil {
		e.Cancelled = *in.Cancelled
	}
	if e.DueDate.IsZero() {
		return invalid("data de vencimento é obrigatória")
	}
	if !e.Amount.IsPositive() {
		return invalid("valor deve ser maior que zero")
	}
	if e.AmountPaid.IsNegative() {
		return invalid("valor pago não pode ser negativo")
	}
	return nil
}

func toAccountResponse(e *entity.AccountEntry, today time.Time) dto.AccountEntryResponse {
	return dto.AccountEntryResponse{
		ID:           e.ID,
		Kind:         e.Kind,
		DueDate:      br.FormatISO(e.DueDate),
		Document:     e.Document,
		Description:  e.Description,
		Counterparty: e.Counterparty,
		Category:     e.Category,
		Amount:       br.NewNumber(e.Amount),
		PaymentDate:  formatOptDate(e.PaymentDate),
		AmountPaid:   br.NewNumber(e.AmountPaid),
		OpenAmount:   br.NewNumber(decimal.Max(e.Amount.Sub(e.AmountPaid), decimal.Zero)),
		Cancelled:    e.Cancelled,
		Status:       string(finance.EntryStatus(e, today)),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
