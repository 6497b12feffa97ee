package finance

import (
	"fmt"
	"time"

	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/shopspring/decimal"
)

// AccountSummary indicadores das contas filtradas. Canceladas ficam de fora.
type AccountSummary struct {
	Count         int
	Total         decimal.Decimal // Σ valor
	Settled       decimal.Decimal // Σ min(pago, valor)
	Open          decimal.Decimal // Σ max(valor - pago, 0)
	OverdueCount  int
	OverdueAmount decimal.Decimal // em aberto das vencidas
}

func SummarizeAccounts(entries []*entity.AccountEntry, today time.Time) AccountSummary {
	s := AccountSummary{Total: decimal.Zero, Settled: decimal.Zero, Open: decimal.Zero, OverdueAmount: decimal.Zero}
	for _, e := range entries {
		if e.Cancelled {
			continue
		}
		s.Count++
		s.Total = s.Total.Add(e.Amount)
		s.Settled = s.Settled.Add(decimal.Min(e.AmountPaid, e.Amount))
		open := decimal.Max(e.Amount.Sub(e.AmountPaid), decimal.Zero)
		s.Open = s.Open.Add(open)
		if EntryStatus(e, today) == StatusVencido && open.IsPositive() {
			s.OverdueCount++
			s.OverdueAmount = s.OverdueAmount.Add(open)
		}
	}
	return s
}

// LedgerSummary totais do livro-caixa.
type LedgerSummary struct {
	Count    int
	Entradas decimal.Decimal
	Saidas   decimal.Decimal
	Despesas decimal.Decimal
	Saldo    decimal.Decimal // entradas - saídas - despesas
}

// SummarizeLedger soma lançamentos não cancelados por tipo.
func SummarizeLedger(txs []*entity.Transaction) LedgerSummary {
	s := LedgerSummary{Entradas: decimal.Zero, Saidas: decimal.Zero, Despesas: decimal.Zero}
	for _, t := range txs {
		if t.Status == entity.TxStatusCancelado {
			continue
		}
		s.Count++
		switch t.Type {
		case entity.TxEntrada:
			s.Entradas = s.Entradas.Add(t.Amount)
		case entity.TxSaida:
			s.Saidas = s.Saidas.Add(t.Amount)
		case entity.TxDespesa:
			s.Despesas = s.Despesas.Add(t.Amount)
		}
	}
	s.Saldo = s.Entradas.Sub(s.Saidas).Sub(s.Despesas)
	return s
}

// NormalizeTxType "" vira entrada; aceita "Saída", "receita", "gasto" etc.
func NormalizeTxType(s string) (string, error) {
	switch fold(s) {
	case "", "entrada", "receita", "credito":
		return entity.TxEntrada, nil
	case "saida", "debito":
		return entity.TxSaida, nil
	case "despesa", "gasto":
		return entity.TxDespesa, nil
	}
	return "", fmt.Errorf("%w: tipo de lançamento desconhecido %q", domain.ErrInvalidInput, s)
}

// NormalizeTxStatus "" vira Pendente.
func NormalizeTxStatus(s string) (string, error) {
	switch fold(s) {
	case "", "pendente", "aberto", "em aberto":
		return entity.TxStatusPendente, nil
	case "pago", "paga", "recebido", "quitado":
		return entity.TxStatusPago, nil
	case "cancelado", "cancelada":
		return entity.TxStatusCancelado, nil
	}
	return "", fmt.Errorf("%w: status de lançamento desconhecido %q", domain.ErrInvalidInput, s)
}

func fold(s string) string { return query.Fold(s) }
