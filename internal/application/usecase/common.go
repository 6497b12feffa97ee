package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/pkg/br"
	"github.com/shopspring/decimal"
)

// Clock fornece "agora" e "hoje" no fuso da operação.
type Clock struct {
	Loc     *time.Location
	NowFunc func() time.Time
}

// NewClock relógio real no fuso informado.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, NowFunc: time.Now}
}

// Current instante atual no fuso do relógio.
func (c Clock) Current() time.Time {
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	if c.NowFunc == nil {
		return time.Now().In(loc)
	}
	return c.NowFunc().In(loc)
}

// Today data civil corrente (meia-noite UTC).
func (c Clock) Today() time.Time { return br.DateOf(c.Current()) }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ParamsFrom converte os filtros da query string em query.Params validados.
func ParamsFrom(f dto.ListFilter) (query.Params, error) {
	f.DefaultPage()
	p := query.Params{
		Text:   strings.TrimSpace(f.Q),
		Status: strings.TrimSpace(f.Status),
		Month:  strings.TrimSpace(f.Month),
		Limit:  f.Limit,
		Offset: f.Offset,
		Extra:  f.Extra,
	}
	if s := strings.TrimSpace(f.From); s != "" {
		d, err := br.ParseDate(s)
		if err != nil {
			return p, invalid("data inicial inválida: %s", s)
		}
		p.From = &d
	}
	if s := strings.TrimSpace(f.To); s != "" {
		d, err := br.ParseDate(s)
		if err != nil {
			return p, invalid("data final inválida: %s", s)
		}
		p.To = &d
	}
	if p.Month != "" {
		if _, err := time.Parse("2006-01", p.Month); err != nil {
			return p, invalid("mês inválido, use AAAA-MM: %s", p.Month)
		}
	}
	return p, nil
}

func paginate[T any](items []T, p query.Params) *dto.ListResponse[T] {
	return &dto.ListResponse[T]{
		Items: query.Paginate(items, p.Limit, p.Offset),
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: len(items)},
	}
}

func mapAll[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// byDateDesc ordena por data decrescente; empate pelo cadastro mais recente.
func byDateDesc[E any](items []*E, date func(*E) time.Time, created func(*E) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := date(items[i]), date(items[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return created(items[i]).After(created(items[j]))
	})
}

func byName[E any](items []*E, name func(*E) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return query.Fold(name(items[i])) < query.Fold(name(items[j]))
	})
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// setString aplica v em dst quando informado.
func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setNumber(dst *decimal.Decimal, v *br.Number) {
	if v != nil {
		*dst = v.Decimal
	}
}

func number(v *br.Number) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return v.Decimal
}

func parseDate(field, s string) (time.Time, error) {
	d, err := br.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalid("%s inválida: %q", field, s)
	}
	return d, nil
}

// optionalDate "" ou nil devolve nil.
func optionalDate(field string, v *string) (*time.Time, error) {
	s := trimmed(v)
	if s == "" {
		return nil, nil
	}
	d, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func formatOptDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return br.FormatISO(*t)
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

func checkTime(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return invalid("%s inválido, use HH:MM: %q", field, s)
	}
	return nil
}
