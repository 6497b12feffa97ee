package campaign

import (
	"testing"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeServiceType(t *testing.T) {
	cases := map[string]string{
		"panfletagem_residencial":             ServiceResidencial,
		"PAP (Porta a Porta)":                 ServiceResidencial,
		"Arrastão":                            ServiceResidencial,
		"Semáforos":                           ServiceSinaleiros,
		"sinaleiro":                           ServiceSinaleiros,
		"Distribuição em eventos":             ServiceEventos,
		"ações":                               ServicePromocionais,
		"Distribuição de Amostras (Sampling)": ServicePromocionais,
		"Blitz promocional":                   ServicePromocionais,
		"Impressão":                           ServiceOutros,
		"":                                    ServiceOutros,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeServiceType(in), in)
	}
}

func TestNormalizeStatus_AguardandoViraEmAberto(t *testing.T) {
	st, ok := NormalizeStatus("aguardando")
	require.True(t, ok)
	assert.Equal(t, entity.ActionStatusAberta, st)

	st, ok = NormalizeStatus("Finalizado")
	require.True(t, ok)
	assert.Equal(t, entity.ActionStatusFinalizado, st)

	_, ok = NormalizeStatus("perdido")
	assert.False(t, ok)
}

func TestNormalizeDayPeriod(t *testing.T) {
	p, ok := NormalizeDayPeriod("manha")
	require.True(t, ok)
	assert.Equal(t, "Manhã", p)
	_, ok = NormalizeDayPeriod("madrugada")
	assert.False(t, ok)
}
