package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

// ClientImportTemplate modelo de planilha servido em /clients/import/template.
const ClientImportTemplate = "name,email,phone,company,segment,cpf_cnpj\n" +
	"Maria Souza,maria@exemplo.com.br,(65) 99999-0001,Mercado Bom Preço,Varejo,12.345.678/0001-90\n" +
	"João Lima,joao@exemplo.com.br,(65) 98888-0002,Farmácia Central,Saúde,123.456.789-09\n"

// ClientUseCase regras de negócio dos clientes.
type ClientUseCase struct {
	repo   repository.ClientRepository
	tx     ports.TxRunner
	sheets ports.SheetReader
}

// NewClientUseCase sheets pode ser nil quando a importação não está disponível.
func NewClientUseCase(repo repository.ClientRepository, tx ports.TxRunner, sheets ports.SheetReader) *ClientUseCase {
	return &ClientUseCase{repo: repo, tx: tx, sheets: sheets}
}

// visible supervisores só enxergam os clientes que cadastraram.
func visible(actor dto.Actor, c *entity.Client) bool {
	return actor.Role != entity.RoleSupervisor || c.OwnerID == actor.UserID
}

func (uc *ClientUseCase) scoped(ctx context.Context, actor dto.Actor) ([]*entity.Client, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(all, func(c *entity.Client) bool { return visible(actor, c) }), nil
}

// List filtros: q (nome, empresa, e-mail, telefone, cidade), status, segment.
func (uc *ClientUseCase) List(ctx context.Context, actor dto.Actor, f dto.ListFilter) (*dto.ListResponse[dto.ClientResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	all, err := uc.scoped(ctx, actor)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(c *entity.Client) bool {
		return query.MatchText(p.Text, c.Name, c.Company, c.Email, c.Phone, c.City, c.Segment) &&
			query.MatchEqual(p.Status, c.Status) &&
			query.MatchEqual(p.Get("segment"), c.Segment) &&
			p.MatchDate(c.CreatedAt)
	})
	byName(items, func(c *entity.Client) string { return c.Name })
	return paginate(mapAll(items, toClientResponse), p), nil
}

func (uc *ClientUseCase) GetByID(ctx context.Context, actor dto.Actor, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !visible(actor, c) {
		return nil, domain.ErrNotFound
	}
	out := toClientResponse(c)
	return &out, nil
}

// Create o e-mail é único sem diferenciar maiúsculas.
func (uc *ClientUseCase) Create(ctx context.Context, actor dto.Actor, in dto.ClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		Status:    entity.ClientStatusAtivo,
		OwnerID:   actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toClientResponse(c)
	return &out, nil
}

func (uc *ClientUseCase) Update(ctx context.Context, actor dto.Actor, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !visible(actor, c) {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toClientResponse(c)
	return &out, nil
}

func (uc *ClientUseCase) apply(ctx context.Context, c *entity.Client, in dto.ClientRequest) error {
	if in.Segment == nil {
		in.Segment = in.Segmento
	}
	setString(&c.Name, in.Name)
	setString(&c.Company, in.Company)
	setString(&c.Email, in.Email)
	setString(&c.Phone, in.Phone)
	setString(&c.Segment, in.Segment)
	setString(&c.CPFCNPJ, in.CPFCNPJ)
	setString(&c.Address, in.Address)
	setString(&c.City, in.City)
	setString(&c.State, in.State)
	setString(&c.ZipCode, in.ZipCode)
	setString(&c.Notes, in.Notes)
	c.State = strings.ToUpper(c.State)
	if in.Status != nil {
		st, ok := normalizeClientStatus(*in.Status)
		if !ok {
			return invalid("status de cliente inválido: %q", *in.Status)
		}
		c.Status = st
	}
	if c.Name == "" {
		return invalid("nome é obrigatório")
	}
	if !validEmail(c.Email) {
		return invalid("e-mail inválido: %q", c.Email)
	}
	other, err := uc.repo.GetByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != c.ID {
		return fmt.Errorf("%w: e-mail já cadastrado: %s", domain.ErrDuplicate, c.Email)
	}
	return nil
}

func normalizeClientStatus(s string) (string, bool) {
	switch query.Fold(s) {
	case "", "ativo", "ativa", "active":
		return entity.ClientStatusAtivo, true
	case "inativo", "inativa", "inactive":
		return entity.ClientStatusInativo, true
	case "pendente", "pending":
		return entity.ClientStatusPendente, true
	}
	return "", false
}

// Delete recusa com ErrConflict quando há ações vinculadas ao cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(clients repository.ClientRepository, actions repository.ActionRepository) error {
		c, err := clients.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		n, err := actions.CountByClient(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: cliente possui %d ação(ões) vinculada(s)", domain.ErrConflict, n)
		}
		return clients.Delete(ctx, id)
	})
}

// Stats contagens por status e por segmento dos clientes visíveis.
func (uc *ClientUseCase) Stats(ctx context.Context, actor dto.Actor) (*dto.ClientStatsResponse, error) {
	all, err := uc.scoped(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientStatsResponse{
		Total:     len(all),
		ByStatus:  map[string]int{entity.ClientStatusAtivo: 0, entity.ClientStatusInativo: 0, entity.ClientStatusPendente: 0},
		BySegment: map[string]int{},
	}
	for _, c := range all {
		out.ByStatus[c.Status]++
		seg := c.Segment
		if seg == "" {
			seg = "Sem segmento"
		}
		out.BySegment[seg]++
	}
	return out, nil
}

var importColumns = map[string][]string{
	"name":     {"name", "nome", "cliente"},
	"email":    {"email", "e-mail", "e_mail"},
	"phone":    {"phone", "telefone", "celular", "whatsapp"},
	"company":  {"company", "empresa", "razao social"},
	"segment":  {"segment", "segmento"},
	"cpf_cnpj": {"cpf_cnpj", "cpf/cnpj", "cnpj", "cpf", "documento"},
	"city":     {"city", "cidade"},
	"state":    {"state", "estado", "uf"},
}

// Import cria um cliente por linha. Linhas inválidas ou duplicadas entram em Errors
// (linha 1 é o cabeçalho) sem interromper as demais.
func (uc *ClientUseCase) Import(ctx context.Context, actor dto.Actor, filename string, r io.Reader) (*dto.ImportResult, error) {
	if uc.sheets == nil {
		return nil, domain.ErrUnsupportedMedia
	}
	rows, err := uc.sheets.ReadRows(filename, r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, invalid("planilha vazia")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		h = query.Fold(strings.TrimPrefix(h, "\ufeff"))
		for key, aliases := range importColumns {
			for _, a := range aliases {
				if h == a {
					if _, dup := cols[key]; !dup {
						cols[key] = i
					}
				}
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, invalid("coluna obrigatória ausente: name")
	}
	if _, ok := cols["email"]; !ok {
		return nil, invalid("coluna obrigatória ausente: email")
	}

	res := &dto.ImportResult{Errors: []dto.ImportError{}}
	for n, row := range rows[1:] {
		line := n + 2
		if blankRow(row) {
			continue
		}
		cell := func(key string) *string {
			i, ok := cols[key]
			if !ok || i >= len(row) {
				return nil
			}
			v := row[i]
			return &v
		}
		in := dto.ClientRequest{
			Name:    cell("name"),
			Email:   cell("email"),
			Phone:   cell("phone"),
			Company: cell("company"),
			Segment: cell("segment"),
			CPFCNPJ: cell("cpf_cnpj"),
			City:    cell("city"),
			State:   cell("state"),
		}
		if _, err := uc.Create(ctx, actor, in); err != nil {
			if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrDuplicate) {
				return nil, err
			}
			res.Errors = append(res.Errors, dto.ImportError{Line: line, Message: err.Error()})
			continue
		}
		res.ImportedCount++
	}
	return res, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Segment:   c.Segment,
		CPFCNPJ:   c.CPFCNPJ,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Status:    c.Status,
		Notes:     c.Notes,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
