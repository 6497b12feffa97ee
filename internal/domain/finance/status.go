// Package finance concentra as regras derivadas do financeiro: status de contas,
// indicadores de contas a pagar/receber e saldo do livro-caixa.
package finance

import (
	"time"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Status derivado de uma conta a pagar/receber.
type Status string

const (
	StatusPago      Status = "pago"
	StatusPendente  Status = "pendente"
	StatusVencido   Status = "vencido"
	StatusCancelado Status = "cancelado"
)

// ParseStatus aceita os rótulos das telas ("Pago", "Vencida", "Recebido"...).
func ParseStatus(s string) (Status, bool) {
	switch fold(s) {
	case "pago", "paga", "recebido", "recebida", "quitado", "quitada":
		return StatusPago, true
	case "pendente", "aberto", "aberta", "em aberto":
		return StatusPendente, true
	case "vencido", "vencida", "atrasado", "atrasada":
		return StatusVencido, true
	case "cancelado", "cancelada":
		return StatusCancelado, true
	}
	return "", false
}

// DeriveStatus é a regra única de status:
//  1. cancelado quando a conta foi cancelada;
//  2. pago quando amount > 0 e paid >= amount;
//  3. vencido quando o vencimento é anterior a hoje;
//  4. pendente nos demais casos.
//
// due e today são comparados só pela data.
func DeriveStatus(amount, paid decimal.Decimal, due time.Time, cancelled bool, today time.Time) Status {
	if cancelled {
		return StatusCancelado
	}
	if amount.IsPositive() && paid.GreaterThanOrEqual(amount) {
		return StatusPago
	}
	if dateOnly(due).Before(dateOnly(today)) {
		return StatusVencido
	}
	return StatusPendente
}

// EntryStatus aplica DeriveStatus a uma conta.
func EntryStatus(e *entity.AccountEntry, today time.Time) Status {
	return DeriveStatus(e.Amount, e.AmountPaid, e.DueDate, e.Cancelled, today)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
