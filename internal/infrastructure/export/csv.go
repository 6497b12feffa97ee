// Package export renderiza tabelas de exportação em CSV e JSON.
package export

import (
	"bytes"
	"strings"

	appexport "github.com/relampago/backoffice-api/internal/application/export"
)

const utf8BOM = "\ufeff"

var _ appexport.Renderer = CSVRenderer{}

// CSVRenderer CSV com BOM UTF-8 e linhas separadas por \n.
type CSVRenderer struct{}

func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVRenderer) Render(t appexport.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Header
	}
	writeCSVLine(&buf, header)
	for _, row := range t.Rows {
		buf.WriteByte('\n')
		writeCSVLine(&buf, row)
	}
	return buf.Bytes(), nil
}

func writeCSVLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(csvField(f))
	}
}

// csvField só usa aspas quando o valor tem vírgula, aspas ou quebra de linha.
func csvField(v string) string {
	if !strings.ContainsAny(v, ",\"\n\r") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
