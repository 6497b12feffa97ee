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
)

// TransactionUseCase livro-caixa (entradas, saídas e despesas).
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (uc *TransactionUseCase) filtered(ctx context.Context, p query.Params) ([]*entity.Transaction, error) {
	var typ, status string
	var err error
	if s := p.Get("type"); s != "" {
		if typ, err = finance.NormalizeTxType(s); err != nil {
			return nil, err
		}
	}
	if p.Status != "" {
		if status, err = finance.NormalizeTxStatus(p.Status); err != nil {
			return nil, err
		}
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(t *entity.Transaction) bool {
		return query.MatchText(p.Text, t.Description, t.Category, t.Notes, t.PaymentMethod) &&
			(typ == "" || t.Type == typ) &&
			(status == "" || t.Status == status) &&
			query.MatchEqual(p.Get("category"), t.Category) &&
			p.MatchDate(t.Date)
	})
	byDateDesc(items, func(t *entity.Transaction) time.Time { return t.Date }, func(t *entity.Transaction) time.Time { return t.CreatedAt })
	return items, nil
}

func (uc *TransactionUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.TransactionResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toTransactionResponse), p), nil
}

func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	out := toTransactionResponse(t)
	return &out, nil
}

func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	in.Resolve()
	now := time.Now()
	t := &entity.Transaction{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if in.Type == nil {
		t.Type = entity.TxEntrada
	}
	if in.Status == nil {
		t.Status = entity.TxStatusPendente
	}
	if err := applyTransaction(t, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := toTransactionResponse(t)
	return &out, nil
}

// Replace PUT: data e valor precisam vir no corpo.
func (uc *TransactionUseCase) Replace(ctx context.Context, id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if in.Date == nil || in.Amount == nil {
		return nil, invalid("data e valor são obrigatórios")
	}
	return uc.Patch(ctx, id, in)
}

// Patch PATCH: só os campos informados mudam.
func (uc *TransactionUseCase) Patch(ctx context.Context, id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	in.Resolve()
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyTransaction(t, in); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	out := toTransactionResponse(t)
	return &out, nil
}

func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Summary totais sobre os mesmos filtros da listagem.
func (uc *TransactionUseCase) Summary(ctx context.Context, f dto.ListFilter) (*dto.LedgerSummaryResponse, error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filtered(ctx, p)
	if err != nil {
		return nil, err
	}
	return toLedgerSummary(finance.SummarizeLedger(items)), nil
}

func toLedgerSummary(s finance.LedgerSummary) *dto.LedgerSummaryResponse {
	return &dto.LedgerSummaryResponse{
		Count:    s.Count,
		Entradas: br.NewNumber(s.Entradas),
		Saidas:   br.NewNumber(s.Saidas),
		Despesas: br.NewNumber(s.Despesas),
		Saldo:    br.NewNumber(s.Saldo),
	}
}

func applyTransaction(t *entity.Transaction, in dto.TransactionRequest) error {
	var err error
	if in.Type != nil {
		if t.Type, err = finance.NormalizeTxType(*in.Type); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if t.Status, err = finance.NormalizeTxStatus(*in.Status); err != nil {
			return err
		}
	}
	if in.Date != nil {
		if t.Date, err = parseDate("data", *in.Date); err != nil {
			return err
		}
	}
	if in.DueDate != nil {
		if t.DueDate, err = optionalDate("data de vencimento", in.DueDate); err != nil {
			return err
		}
	}
	if in.PayDate != nil {
		if t.PayDate, err = optionalDate("data de pagamento", in.PayDate); err != nil {
			return err
		}
	}
	setNumber(&t.Amount, in.Amount)
	setNumber(&t.InterestRate, in.InterestRate)
	setString(&t.Category, in.Category)
	setString(&t.Description, in.Description)
	setString(&t.Notes, in.Notes)
	setString(&t.ActionID, in.ActionID)
	setString(&t.PaymentMethod, in.PaymentMethod)
	if t.Date.IsZero() {
		return invalid("data é obrigatória")
	}
	if !t.Amount.IsPositive() {
		return invalid("valor deve ser maior que zero")
	}
	if t.InterestRate.IsNegative() {
		return invalid("juros não pode ser negativo")
	}
	return nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Date:          br.FormatISO(t.Date),
		Amount:        br.NewNumber(t.Amount),
		Category:      t.Category,
		Description:   t.Description,
		Notes:         t.Notes,
		ActionID:      t.ActionID,
		Status:        t.Status,
		DueDate:       formatOptDate(t.DueDate),
		PayDate:       formatOptDate(t.PayDate),
		PaymentMethod: t.PaymentMethod,
		InterestRate:  br.NewNumber(t.InterestRate),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
