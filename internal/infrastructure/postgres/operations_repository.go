package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

var (
	_ repository.MaterialRepository = (*MaterialRepo)(nil)
	_ repository.ActionRepository   = (*ActionRepo)(nil)
	_ repository.VacancyRepository  = (*VacancyRepo)(nil)
	_ repository.ContactRepository  = (*ContactRepo)(nil)
)

// ─── Materiais ───────────────────────────────────────────────────────────────

type MaterialRepo struct {
	q Querier
}

func NewMaterialRepository(q Querier) *MaterialRepo { return &MaterialRepo{q: q} }

const materialColumns = `id, date, quantity, client_name, responsible, sample_url, protocol_url, notes, created_at, updated_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	if err := row.Scan(&m.ID, &m.Date, &m.Quantity, &m.ClientName, &m.Responsible, &m.SampleURL,
		&m.ProtocolURL, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	_, err := r.q.Exec(ctx, `INSERT INTO materials (`+materialColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Date, m.Quantity, m.ClientName, m.Responsible, m.SampleURL, m.ProtocolURL, m.Notes, m.CreatedAt, m.UpdatedAt)
	return wrapErr("insert material", err)
}

func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := queryOne(ctx, r.q, scanMaterial, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	list, err := queryAll(ctx, r.q, scanMaterial, `SELECT `+materialColumns+` FROM materials ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return list, nil
}

func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET date = $2, quantity = $3, client_name = $4, responsible = $5, sample_url = $6,
			protocol_url = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	return wrapErr("update material", execOne(ctx, r.q, query,
		m.ID, m.Date, m.Quantity, m.ClientName, m.Responsible, m.SampleURL, m.ProtocolURL, m.Notes, m.UpdatedAt))
}

func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete material", execOne(ctx, r.q, `DELETE FROM materials WHERE id = $1`, id))
}

// ─── Ações ───────────────────────────────────────────────────────────────────

type ActionRepo struct {
	q Querier
}

func NewActionRepository(q Querier) *ActionRepo { return &ActionRepo{q: q} }

const actionColumns = `id, COALESCE(client_id, ''), client_name, company_name, types, start_date, start_time, end_date,
	end_time, day_periods, material_qty, material_photo_url, supervisor, team, notes, status, created_at, updated_at`

func scanAction(row pgx.Row) (*entity.Action, error) {
	var a entity.Action
	if err := row.Scan(&a.ID, &a.ClientID, &a.ClientName, &a.CompanyName, &a.Types, &a.StartDate, &a.StartTime,
		&a.EndDate, &a.EndTime, &a.DayPeriods, &a.MaterialQty, &a.MaterialPhotoURL, &a.Supervisor, &a.Team,
		&a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActionRepo) Create(ctx context.Context, a *entity.Action) error {
	query := `
		INSERT INTO actions (id, client_id, client_name, company_name, types, start_date, start_time, end_date,
			end_time, day_periods, material_qty, material_photo_url, supervisor, team, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query, a.ID, nullIfEmpty(a.ClientID), a.ClientName, a.CompanyName, nonNilStrings(a.Types),
		a.StartDate, a.StartTime, a.EndDate, a.EndTime, nonNilStrings(a.DayPeriods), a.MaterialQty, a.MaterialPhotoURL,
		a.Supervisor, nonNilStrings(a.Team), a.Notes, a.Status, a.CreatedAt, a.UpdatedAt)
	return wrapErr("insert action", err)
}

func (r *ActionRepo) GetByID(ctx context.Context, id string) (*entity.Action, error) {
	a, err := queryOne(ctx, r.q, scanAction, `SELECT `+actionColumns+` FROM actions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get action: %w", err)
	}
	return a, nil
}

func (r *ActionRepo) List(ctx context.Context) ([]*entity.Action, error) {
	list, err := queryAll(ctx, r.q, scanAction, `SELECT `+actionColumns+` FROM actions ORDER BY start_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return list, nil
}

func (r *ActionRepo) Update(ctx context.Context, a *entity.Action) error {
	query := `
		UPDATE actions SET client_id = $2, client_name = $3, company_name = $4, types = $5, start_date = $6,
			start_time = $7, end_date = $8, end_time = $9, day_periods = $10, material_qty = $11,
			material_photo_url = $12, supervisor = $13, team = $14, notes = $15, status = $16, updated_at = $17
		WHERE id = $1`
	return wrapErr("update action", execOne(ctx, r.q, query, a.ID, nullIfEmpty(a.ClientID), a.ClientName, a.CompanyName,
		nonNilStrings(a.Types), a.StartDate, a.StartTime, a.EndDate, a.EndTime, nonNilStrings(a.DayPeriods), a.MaterialQty,
		a.MaterialPhotoURL, a.Supervisor, nonNilStrings(a.Team), a.Notes, a.Status, a.UpdatedAt))
}

func (r *ActionRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete action", execOne(ctx, r.q, `DELETE FROM actions WHERE id = $1`, id))
}

// CountByClient dentro de uma tx, trava as ações do cliente até o commit.
func (r *ActionRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM (SELECT 1 FROM actions WHERE client_id = $1 FOR UPDATE) t`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count actions by client: %w", err)
	}
	return n, nil
}

// ─── Vagas ───────────────────────────────────────────────────────────────────

type VacancyRepo struct {
	q Querier
}

func NewVacancyRepository(q Querier) *VacancyRepo { return &VacancyRepo{q: q} }

const vacancyColumns = `id, indication_name, role, client, contact, notes, status, created_at, updated_at`

func scanVacancy(row pgx.Row) (*entity.Vacancy, error) {
	var v entity.Vacancy
	if err := row.Scan(&v.ID, &v.IndicationName, &v.Role, &v.Client, &v.Contact, &v.Notes, &v.Status,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepo) Create(ctx context.Context, v *entity.Vacancy) error {
	_, err := r.q.Exec(ctx, `INSERT INTO job_vacancies (`+vacancyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.IndicationName, v.Role, v.Client, v.Contact, v.Notes, v.Status, v.CreatedAt, v.UpdatedAt)
	return wrapErr("insert vacancy", err)
}

func (r *VacancyRepo) GetByID(ctx context.Context, id string) (*entity.Vacancy, error) {
	v, err := queryOne(ctx, r.q, scanVacancy, `SELECT `+vacancyColumns+` FROM job_vacancies WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get vacancy: %w", err)
	}
	return v, nil
}

func (r *VacancyRepo) List(ctx context.Context) ([]*entity.Vacancy, error) {
	list, err := queryAll(ctx, r.q, scanVacancy, `SELECT `+vacancyColumns+` FROM job_vacancies ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	return list, nil
}

func (r *VacancyRepo) Update(ctx context.Context, v *entity.Vacancy) error {
	query := `
		UPDATE job_vacancies SET indication_name = $2, role = $3, client = $4, contact = $5, notes = $6,
			status = $7, updated_at = $8
		WHERE id = $1`
	return wrapErr("update vacancy", execOne(ctx, r.q, query,
		v.ID, v.IndicationName, v.Role, v.Client, v.Contact, v.Notes, v.Status, v.UpdatedAt))
}

func (r *VacancyRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete vacancy", execOne(ctx, r.q, `DELETE FROM job_vacancies WHERE id = $1`, id))
}

// ─── Contatos ────────────────────────────────────────────────────────────────

type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo { return &ContactRepo{q: q} }

const contactColumns = `id, name, email, phone, company, subject, message, status, ip_address, user_agent, created_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Subject, &c.Message, &c.Status,
		&c.IPAddress, &c.UserAgent, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	_, err := r.q.Exec(ctx, `INSERT INTO contacts (`+contactColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.Subject, c.Message, c.Status, c.IPAddress, c.UserAgent, c.CreatedAt)
	return wrapErr("insert contact", err)
}

func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	c, err := queryOne(ctx, r.q, scanContact, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	list, err := queryAll(ctx, r.q, scanContact, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return list, nil
}

// Update só o status muda depois do envio.
func (r *ContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	return wrapErr("update contact", execOne(ctx, r.q, `UPDATE contacts SET status = $2 WHERE id = $1`, c.ID, c.Status))
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	return wrapErr("delete contact", execOne(ctx, r.q, `DELETE FROM contacts WHERE id = $1`, id))
}
