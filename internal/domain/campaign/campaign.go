// Package campaign regras das ações promocionais: categorias de serviço, períodos e status.
package campaign

import (
	"strings"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
)

// Categorias do gráfico de distribuição de serviços.
const (
	ServiceResidencial  = "Panfletagem Residencial"
	ServiceSinaleiros   = "Sinaleiros/Pedestres"
	ServiceEventos      = "Eventos Estratégicos"
	ServicePromocionais = "Ações Promocionais"
	ServiceOutros       = "Outros"
)

// ServiceCategories ordem fixa de exibição.
var ServiceCategories = []string{ServiceResidencial, ServiceSinaleiros, ServiceEventos, ServicePromocionais, ServiceOutros}

var aliases = map[string][]string{
	ServiceResidencial:  {"residencial", "panfletagem", "panfletagem_residencial", "panfletagem residencial", "pap", "porta a porta", "arrastao"},
	ServiceSinaleiros:   {"sinaleiros", "pedestres", "sinaleiro", "semaforos", "semaforo", "sinaleiros/pedestres"},
	ServiceEventos:      {"eventos", "evento", "estrategicos", "eventos_estrategicos", "eventos estrategicos", "distribuicao em eventos"},
	ServicePromocionais: {"promocionais", "acao_promocional", "acoes", "promocoes", "acoes_promocionais", "acoes promocionais"},
}

// palavras-chave para os rótulos longos do formulário ("PAP (Porta a Porta)", "Blitz promocional"...)
var keywords = []struct {
	word     string
	category string
}{
	{"porta a porta", ServiceResidencial},
	{"arrastao", ServiceResidencial},
	{"semaforo", ServiceSinaleiros},
	{"sinaleiro", ServiceSinaleiros},
	{"pedestre", ServiceSinaleiros},
	{"evento", ServiceEventos},
	{"sampling", ServicePromocionais},
	{"amostra", ServicePromocionais},
	{"degustacao", ServicePromocionais},
	{"demonstracao", ServicePromocionais},
	{"blitz", ServicePromocionais},
	{"brinde", ServicePromocionais},
	{"promocion", ServicePromocionais},
	{"panfletagem", ServiceResidencial},
}

// NormalizeServiceType classifica um tipo de ação em uma das categorias do gráfico.
func NormalizeServiceType(raw string) string {
	r := query.Fold(raw)
	if r == "" {
		return ServiceOutros
	}
	for _, cat := range ServiceCategories[:4] {
		for _, a := range aliases[cat] {
			if r == a {
				return cat
			}
		}
	}
	for _, k := range keywords {
		if strings.Contains(r, k.word) {
			return k.category
		}
	}
	return ServiceOutros
}

var dayPeriods = []string{"Manhã", "Tarde", "Noite"}

// NormalizeDayPeriod devolve o rótulo canônico do período ou false.
func NormalizeDayPeriod(p string) (string, bool) {
	for _, dp := range dayPeriods {
		if query.Fold(dp) == query.Fold(p) {
			return dp, true
		}
	}
	return "", false
}

// NormalizeStatus aceita "aguardando" como sinônimo de "em aberto"; "" vira em aberto.
func NormalizeStatus(s string) (string, bool) {
	switch query.Fold(s) {
	case "", "em aberto", "aberto", "aberta", "aguardando":
		return entity.ActionStatusAberta, true
	case "em processo", "em andamento", "processo":
		return entity.ActionStatusProcesso, true
	case "finalizado", "finalizada", "concluido", "concluida":
		return entity.ActionStatusFinalizado, true
	case "cancelado", "cancelada":
		return entity.ActionStatusCancelado, true
	}
	return "", false
}
