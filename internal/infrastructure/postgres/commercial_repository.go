package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var (
	_ repository.CommercialRecordRepository = (*CommercialRecordRepo)(nil)
	_ repository.OrderRepository            = (*OrderRepo)(nil)
)

type CommercialRecordRepo struct {
	q Querier
}

func NewCommercialRecordRepository(q Querier) *CommercialRecordRepo { return &CommercialRecordRepo{q: q} }

const recordColumns = `id, name, company, phone, email, stage, value, source, notes, created_at, updated_at`

func scanRecord(row pgx.Row) (*entity.CommercialRecord, error) {
	var c entity.CommercialRecord
	if err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Phone, &c.Email, &c.Stage, &c.Value, &c.Source, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommercialRecordRepo) Create(ctx context.Context, c *entity.CommercialRecord) error {
	_, err := r.q.Exec(ctx, `INSERT INTO commercial_records (`+recordColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Company, c.Phone, c.Email, c.Stage, c.Value, c.Source, c.Notes, c.CreatedAt, c.UpdatedAt)
	return wrapErr("insert commercial record", err)
}

func (r *CommercialRecordRepo) GetByID(ctx context.Context, id string) (*entity.CommercialRecord, error) {
	c, err := queryOne(ctx, r.q, scanRecord, `SELECT `+recordColumns+` FROM commercial_records WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get commercial record: %w", err)
	}
	return c, nil
}

func (r *CommercialRecordRepo) List(ctx context.Context) ([]*entity.CommercialRecord, error) {
	list, err := queryAll(ctx, r.q, scanRecord, `SELECT `+recordColumns+` FROM commercial_records ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list commercial records: %w", err)
	}
	return list, nil
}

func (r *CommercialRecordRepo) Update(ctx context.Context, c *entity.CommercialRecord) error {
	query := `
		UPDATE commercial_records SET name = $2, company = $3, phone = $4, email = $5, stage = $6, value = $7,
			source = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	return wrapErr("update commercial record", execOne(ctx, r.q, query,
		c.ID, c.Name, c.Company, c.Phone, c.Email, c.Stage, c.Value, c.Source, c.Notes, c.UpdatedAt))
}

func (r *CommercialRecordRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete commercial record", execOne(ctx, r.q, `DELETE FROM commercial_records WHERE id = $1`, id))
}

// OrderRepo os itens ficam numa coluna JSONB da própria ordem.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo { return &OrderRepo{q: q} }

const orderColumns = `id, client, title, description, status, date, items, total, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var items []byte
	if err := row.Scan(&o.ID, &o.Client, &o.Title, &o.Description, &o.Status, &o.Date, &items, &o.Total,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	return &o, nil
}

func encodeItems(items []entity.OrderItem) ([]byte, error) {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return json.Marshal(items)
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, err := encodeItems(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	_, err = r.q.Exec(ctx, `INSERT INTO commercial_orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.Client, o.Title, o.Description, o.Status, o.Date, items, o.Total, o.CreatedAt, o.UpdatedAt)
	return wrapErr("insert order", err)
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := queryOne(ctx, r.q, scanOrder, `SELECT `+orderColumns+` FROM commercial_orders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	list, err := queryAll(ctx, r.q, scanOrder, `SELECT `+orderColumns+` FROM commercial_orders ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	items, err := encodeItems(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	query := `
		UPDATE commercial_orders SET client = $2, title = $3, description = $4, status = $5, date = $6,
			items = $7, total = $8, updated_at = $9
		WHERE id = $1`
	return wrapErr("update order", execOne(ctx, r.q, query,
		o.ID, o.Client, o.Title, o.Description, o.Status, o.Date, items, o.Total, o.UpdatedAt))
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete order", execOne(ctx, r.q, `DELETE FROM commercial_orders WHERE id = $1`, id))
}
