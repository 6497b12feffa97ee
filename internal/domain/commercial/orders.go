// Package commercial regras das ordens de serviço.
package commercial

import (
	"sort"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/shopspring/decimal"
)

var orderStatuses = []string{
	entity.OrderStatusAberta,
	entity.OrderStatusAndamento,
	entity.OrderStatusConcluida,
	entity.OrderStatusCancelada,
}

// NormalizeOrderStatus devolve o rótulo canônico; "" vira Aberta.
func NormalizeOrderStatus(s string) (string, bool) {
	if query.Fold(s) == "" {
		return entity.OrderStatusAberta, true
	}
	for _, st := range orderStatuses {
		if query.Fold(st) == query.Fold(s) {
			return st, true
		}
	}
	return "", false
}

// ItemsTotal Σ quantidade × valor unitário.
func ItemsTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total.Round(2)
}

// StatusTotal contagem e valor por status.
type StatusTotal struct {
	Status string
	Count  int
	Total  decimal.Decimal
}

// OrderSummary indicadores das ordens filtradas.
type OrderSummary struct {
	Count    int
	Total    decimal.Decimal
	ByStatus []StatusTotal
}

// Summarize agrega as ordens; canceladas entram na contagem por status mas não no total geral.
func Summarize(orders []*entity.Order) OrderSummary {
	s := OrderSummary{Total: decimal.Zero}
	by := map[string]*StatusTotal{}
	for _, o := range orders {
		s.Count++
		st, ok := by[o.Status]
		if !ok {
			st = &StatusTotal{Status: o.Status, Total: decimal.Zero}
			by[o.Status] = st
		}
		st.Count++
		st.Total = st.Total.Add(o.Total)
		if o.Status != entity.OrderStatusCancelada {
			s.Total = s.Total.Add(o.Total)
		}
	}
	for _, st := range by {
		s.ByStatus = append(s.ByStatus, *st)
	}
	sort.Slice(s.ByStatus, func(i, j int) bool { return statusRank(s.ByStatus[i].Status) < statusRank(s.ByStatus[j].Status) })
	return s
}

func statusRank(s string) int {
	for i, st := range orderStatuses {
		if st == s {
			return i
		}
	}
	return len(orderStatuses)
}
