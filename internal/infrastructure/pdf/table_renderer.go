// Package pdf renderiza as tabelas de exportação em PDF (A4 paisagem) com Maroto v2.
//
// Layout da página:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  TÍTULO                                                       │
//	│  Filtros: ...                          Gerado em: DD/MM/AAAA  │
//	│  ──────────────────────────────────────────────────────────  │
//	│  CABEÇALHO DA TABELA                                          │
//	│  linhas (zebradas)                                            │
//	│                                              Página N de M    │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appexport "github.com/relampago/backoffice-api/internal/application/export"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 245, Green: 158, Blue: 11}
	colorDark    = &props.Color{Red: 31, Green: 41, Blue: 55}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 243, Green: 244, Blue: 246}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// maxCellRunes corta o texto das células para caber numa linha de altura fixa.
const maxCellRunes = 40

var _ appexport.Renderer = (*TableRenderer)(nil)

// TableRenderer implementa export.Renderer usando Maroto v2.
type TableRenderer struct {
	author string
}

// NewTableRenderer author vai para os metadados do PDF.
func NewTableRenderer(author string) *TableRenderer { return &TableRenderer{author: author} }

func (r *TableRenderer) ContentType() string { return "application/pdf" }

// Render gera o documento e devolve seus bytes.
func (r *TableRenderer) Render(t appexport.Table) ([]byte, error) {
	grid := len(t.Columns)
	if grid == 0 {
		grid = 1
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(t.Title, true).
		WithAuthor(r.author, true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRows(t, grid)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(t.Columns))
	m.AddRows(tableRows(t)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRows(t appexport.Table, grid int) []core.Row {
	generated := "Gerado em: " + t.GeneratedAt.Format("02/01/2006 15:04")
	return []core.Row{
		row.New(10).Add(col.New(grid).Add(
			text.New(t.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorDark, Top: 1}),
		)),
		row.New(6).Add(col.New(grid).Add(
			text.New(t.Filters, props.Text{Size: 8, Color: colorGray}),
		)),
		row.New(6).Add(col.New(grid).Add(
			text.New(generated, props.Text{Size: 8, Color: colorGray}),
		)),
	}
}

func tableHeaderRow(columns []appexport.Column) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(1).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Left,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorDark})
}

func tableRows(t appexport.Table) []core.Row {
	if len(t.Rows) == 0 {
		return []core.Row{row.New(8).Add(col.New(max(len(t.Columns), 1)).Add(
			text.New("Nenhum registro encontrado.", props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		))}
	}
	out := make([]core.Row, 0, len(t.Rows))
	for i, values := range t.Rows {
		cols := make([]core.Col, 0, len(t.Columns))
		for j := range t.Columns {
			var v string
			if j < len(values) {
				v = values[j]
			}
			cols = append(cols, col.New(1).Add(text.New(truncate(v, maxCellRunes), props.Text{
				Size: 7, Top: 1.5, Left: 1, Right: 1,
			})))
		}
		r := row.New(6).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
		}
		out = append(out, r)
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
