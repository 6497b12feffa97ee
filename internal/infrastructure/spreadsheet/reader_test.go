package spreadsheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/relampago/backoffice-api/internal/domain"
)

func TestReader_CSVComBOMEVirgula(t *testing.T) {
	in := "\ufeffname,email\nPadaria,p@x.com\n\"Loja, Centro\",l@x.com\n"
	rows, err := Reader{}.ReadRows("clientes.CSV", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "email"}, rows[0])
	assert.Equal(t, "Loja, Centro", rows[2][0])
}

func TestReader_CSVPontoEVirgula(t *testing.T) {
	in := "nome;e-mail;telefone\nMercado;m@x.com\n"
	rows, err := Reader{}.ReadRows("c.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Mercado", "m@x.com"}, rows[1])
}

func TestReader_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"name", "email"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Padaria", "p@x.com"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := Reader{}.ReadRows("clientes.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Padaria", "p@x.com"}, rows[1])
}

func TestReader_ExtensaoNaoSuportada(t *testing.T) {
	_, err := Reader{}.ReadRows("clientes.ods", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestReader_XLSXCorrompido(t *testing.T) {
	_, err := Reader{}.ReadRows("x.xlsx", strings.NewReader("não é zip"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReader_CSVWindows1252(t *testing.T) {
	// "São Paulo" com ã = 0xE3
	in := []byte("nome;cidade\nPadaria;S\xe3o Paulo\n")
	rows, err := Reader{}.ReadRows("c.csv", strings.NewReader(string(in)))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "São Paulo", rows[1][1])
}
