package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var (
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.AccountRepository     = (*AccountRepo)(nil)
)

type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo { return &TransactionRepo{q: q} }

const transactionColumns = `id, type, date, amount, category, description, notes, action_id, status, due_date, pay_date,
	payment_method, interest_rate, created_at, updated_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := row.Scan(&t.ID, &t.Type, &t.Date, &t.Amount, &t.Category, &t.Description, &t.Notes, &t.ActionID,
		&t.Status, &t.DueDate, &t.PayDate, &t.PaymentMethod, &t.InterestRate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, t.ID, t.Type, t.Date, t.Amount, t.Category, t.Description, t.Notes, t.ActionID,
		t.Status, t.DueDate, t.PayDate, t.PaymentMethod, t.InterestRate, t.CreatedAt, t.UpdatedAt)
	return wrapErr("insert transaction", err)
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := queryOne(ctx, r.q, scanTransaction, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	list, err := queryAll(ctx, r.q, scanTransaction, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	query := `
		UPDATE transactions SET type = $2, date = $3, amount = $4, category = $5, description = $6, notes = $7,
			action_id = $8, status = $9, due_date = $10, pay_date = $11, payment_method = $12, interest_rate = $13,
			updated_at = $14
		WHERE id = $1`
	return wrapErr("update transaction", execOne(ctx, r.q, query, t.ID, t.Type, t.Date, t.Amount, t.Category,
		t.Description, t.Notes, t.ActionID, t.Status, t.DueDate, t.PayDate, t.PaymentMethod, t.InterestRate, t.UpdatedAt))
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete transaction", execOne(ctx, r.q, `DELETE FROM transactions WHERE id = $1`, id))
}

// AccountRepo contas a pagar e a receber na mesma tabela, separadas por kind.
type AccountRepo struct {
	q Querier
}

func NewAccountRepository(q Querier) *AccountRepo { return &AccountRepo{q: q} }

const accountColumns = `id, kind, due_date, document, description, counterparty, category, amount, payment_date,
	amount_paid, cancelled, notes, created_at, updated_at`

func scanAccount(row pgx.Row) (*entity.AccountEntry, error) {
	var e entity.AccountEntry
	if err := row.Scan(&e.ID, &e.Kind, &e.DueDate, &e.Document, &e.Description, &e.Counterparty, &e.Category,
		&e.Amount, &e.PaymentDate, &e.AmountPaid, &e.Cancelled, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *AccountRepo) Create(ctx context.Context, e *entity.AccountEntry) error {
	query := `
		INSERT INTO account_entries (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Kind, e.DueDate, e.Document, e.Description, e.Counterparty, e.Category,
		e.Amount, e.PaymentDate, e.AmountPaid, e.Cancelled, e.Notes, e.CreatedAt, e.UpdatedAt)
	return wrapErr("insert account entry", err)
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.AccountEntry, error) {
	e, err := queryOne(ctx, r.q, scanAccount, `SELECT `+accountColumns+` FROM account_entries WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get account entry: %w", err)
	}
	return e, nil
}

func (r *AccountRepo) List(ctx context.Context) ([]*entity.AccountEntry, error) {
	list, err := queryAll(ctx, r.q, scanAccount, `SELECT `+accountColumns+` FROM account_entries ORDER BY due_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list account entries: %w", err)
	}
	return list, nil
}

func (r *AccountRepo) ListByKind(ctx context.Context, kind string) ([]*entity.AccountEntry, error) {
	list, err := queryAll(ctx, r.q, scanAccount, `SELECT `+accountColumns+` FROM account_entries WHERE kind = $1 ORDER BY due_date DESC`, kind)
	if err != nil {
		return nil, fmt.Errorf("list account entries by kind: %w", err)
	}
	return list, nil
}

func (r *AccountRepo) Update(ctx context.Context, e *entity.AccountEntry) error {
	query := `
		UPDATE account_entries SET due_date = $2, document = $3, description = $4, counterparty = $5, category = $6,
			amount = $7, payment_date = $8, amount_paid = $9, cancelled = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	return wrapErr("update account entry", execOne(ctx, r.q, query, e.ID, e.DueDate, e.Document, e.Description,
		e.Counterparty, e.Category, e.Amount, e.PaymentDate, e.AmountPaid, e.Cancelled, e.Notes, e.UpdatedAt))
}

func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete account entry", execOne(ctx, r.q, `DELETE FROM account_entries WHERE id = $1`, id))
}
