// Package export monta as tabelas exportáveis de cada cadastro e delega a
// renderização (CSV, JSON, PDF) aos adaptadores de infrastructure.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
)

// Format formato de saída.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// Column coluna da tabela: Key nomeia o campo no JSON, Header é o título no CSV/PDF.
type Column struct {
	Key    string
	Header string
}

// Table dados já formatados para exibição.
type Table struct {
	Title       string
	Filters     string
	GeneratedAt time.Time
	Columns     []Column
	Rows        [][]string
}

// Renderer converte uma Table em bytes de um formato.
type Renderer interface {
	Render(t Table) ([]byte, error)
	ContentType() string
}

// File resultado pronto para download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Sources casos de uso que alimentam os datasets.
type Sources struct {
	Clients      *usecase.ClientUseCase
	Materials    *usecase.MaterialUseCase
	Actions      *usecase.ActionUseCase
	Vacancies    *usecase.VacancyUseCase
	Fleet        *usecase.FleetUseCase
	Commercial   *usecase.CommercialUseCase
	Transactions *usecase.TransactionUseCase
	Accounts     *usecase.AccountUseCase
	Users        *usecase.UserUseCase
}

type dataset struct {
	title   string
	roles   []string // vazio = qualquer papel autenticado
	columns []Column
	load    func(ctx context.Context, actor dto.Actor, f dto.ListFilter) ([][]string, error)
}

// ExportUseCase exporta qualquer dataset registrado.
type ExportUseCase struct {
	datasets  map[string]dataset
	renderers map[Format]Renderer
	clock     usecase.Clock
}

// NewExportUseCase renderers sem um formato fazem esse formato responder ErrInvalidInput.
func NewExportUseCase(src Sources, renderers map[Format]Renderer, clock usecase.Clock) *ExportUseCase {
	return &ExportUseCase{datasets: buildDatasets(src), renderers: renderers, clock: clock}
}

// Datasets nomes aceitos em /export/:dataset.
func (uc *ExportUseCase) Datasets() []string {
	out := make([]string, 0, len(uc.datasets))
	for _, name := range datasetOrder {
		if _, ok := uc.datasets[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Export aplica os filtros da listagem (sem paginação) e renderiza no formato pedido.
func (uc *ExportUseCase) Export(ctx context.Context, actor dto.Actor, name string, format Format, f dto.ListFilter) (*File, error) {
	ds, ok := uc.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: dataset desconhecido %q", domain.ErrNotFound, name)
	}
	if !allowed(actor.Role, ds.roles) {
		return nil, domain.ErrForbidden
	}
	if format == "" {
		format = FormatCSV
	}
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato não suportado %q", domain.ErrInvalidInput, format)
	}
	f.Limit, f.Offset = 0, 0
	rows, err := ds.load(ctx, actor, f)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Current()
	data, err := r.Render(Table{
		Title:       ds.title,
		Filters:     describeFilters(f),
		GeneratedAt: now,
		Columns:     ds.columns,
		Rows:        rows,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &File{
		Name:        FileName(name, format, now),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}

// FileName "<dataset>-AAAA-MM-DDTHH-MM-SS.<ext>".
func FileName(name string, format Format, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", name, t.Format("2006-01-02T15-04-05"), format)
}

func allowed(role string, roles []string) bool {
	if len(roles) == 0 || role == entity.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func describeFilters(f dto.ListFilter) string {
	var parts []string
	add := func(label, v string) {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Busca", f.Q)
	add("Status", f.Status)
	add("De", f.From)
	add("Até", f.To)
	add("Mês", f.Month)
	for _, k := range []string{"type", "plate", "stage", "segment", "category", "role"} {
		add(k, f.Extra[k])
	}
	if len(parts) == 0 {
		return "Filtros: nenhum"
	}
	return "Filtros: " + strings.Join(parts, " | ")
}
