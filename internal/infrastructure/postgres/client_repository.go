package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, company, email, phone, segment, cpf_cnpj, address, city, state, zip_code, status, notes, owner_id, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Segment, &c.CPFCNPJ,
		&c.Address, &c.City, &c.State, &c.ZipCode, &c.Status, &c.Notes, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Company, c.Email, c.Phone, c.Segment, c.CPFCNPJ,
		c.Address, c.City, c.State, c.ZipCode, c.Status, c.Notes, c.OwnerID, c.CreatedAt, c.UpdatedAt)
	return wrapErr("insert client", err)
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := queryOne(ctx, r.q, scanClient, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	c, err := queryOne(ctx, r.q, scanClient, `SELECT `+clientColumns+` FROM clients WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	list, err := queryAll(ctx, r.q, scanClient, `SELECT `+clientColumns+` FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, company = $3, email = $4, phone = $5, segment = $6, cpf_cnpj = $7,
			address = $8, city = $9, state = $10, zip_code = $11, status = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	return wrapErr("update client", execOne(ctx, r.q, query, c.ID, c.Name, c.Company, c.Email, c.Phone, c.Segment, c.CPFCNPJ,
		c.Address, c.City, c.State, c.ZipCode, c.Status, c.Notes, c.UpdatedAt))
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	err := execOne(ctx, r.q, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil && isForeignKeyViolation(err) {
		return fmt.Errorf("%w: cliente possui ações vinculadas", domain.ErrConflict)
	}
	return wrapErr("delete client", err)
}
