package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	appexport "github.com/relampago/backoffice-api/internal/application/export"
)

var _ appexport.Renderer = JSONRenderer{}

// JSONRenderer array de objetos com as chaves na ordem das colunas.
type JSONRenderer struct{}

func (JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (JSONRenderer) Render(t appexport.Table) ([]byte, error) {
	var raw bytes.Buffer
	raw.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			raw.WriteByte(',')
		}
		raw.WriteByte('{')
		for j, c := range t.Columns {
			if j > 0 {
				raw.WriteByte(',')
			}
			key, err := json.Marshal(c.Key)
			if err != nil {
				return nil, fmt.Errorf("encode key: %w", err)
			}
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			val, err := json.Marshal(cell)
			if err != nil {
				return nil, fmt.Errorf("encode value: %w", err)
			}
			raw.Write(key)
			raw.WriteByte(':')
			raw.Write(val)
		}
		raw.WriteByte('}')
	}
	raw.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
