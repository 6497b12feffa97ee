// Package query reúne os filtros puros aplicados sobre listas já carregadas:
// busca textual sem acento, faixa de datas, mês e paginação por limit/offset.
package query

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Params filtros comuns das listagens.
type Params struct {
	Text   string
	Status string
	From   *time.Time
	To     *time.Time
	Month  string // AAAA-MM
	Limit  int    // 0 = sem limite
	Offset int
	Extra  map[string]string // filtros categóricos específicos (placa, tipo, etapa...)
}

// Get devolve um filtro extra ou "".
func (p Params) Get(key string) string {
	if p.Extra == nil {
		return ""
	}
	return p.Extra[key]
}

// Fold minúsculas e sem diacríticos ("Ação" -> "acao").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// MatchText verdadeiro quando q é vazio ou aparece em algum dos campos.
func MatchText(q string, fields ...string) bool {
	q = Fold(q)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}

// MatchEqual compara ignorando acento e caixa; filtro vazio casa com tudo.
func MatchEqual(filter, value string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return Fold(filter) == Fold(value)
}

// InRange faixa inclusiva por dia; limites nil são abertos.
func InRange(d time.Time, from, to *time.Time) bool {
	day := dayKey(d)
	if from != nil && day < dayKey(*from) {
		return false
	}
	if to != nil && day > dayKey(*to) {
		return false
	}
	return true
}

// InMonth verdadeiro quando month é vazio ou d cai em AAAA-MM.
func InMonth(d time.Time, month string) bool {
	if month == "" {
		return true
	}
	return d.Format("2006-01") == month
}

// MatchDate aplica faixa e mês de p sobre d.
func (p Params) MatchDate(d time.Time) bool {
	return InRange(d, p.From, p.To) && InMonth(d, p.Month)
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

// Filter devolve os itens para os quais keep é verdadeiro.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate recorta items por offset/limit; limit <= 0 devolve tudo a partir de offset.
func Paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
