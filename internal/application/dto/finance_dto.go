package dto

import (
	"time"

	"github.com/relampago/backoffice-api/pkg/br"
)

// TransactionRequest aceita os apelidos camelCase enviados pelas telas antigas.
type TransactionRequest struct {
	Type           *string    `json:"type"`
	Date           *string    `json:"date"`
	Amount         *br.Number `json:"amount"`
	Category       *string    `json:"category"`
	Description    *string    `json:"description"`
	Notes          *string    `json:"notes"`
	ActionID       *string    `json:"action_id"`
	Status         *string    `json:"status"`
	DueDate        *string    `json:"due_date"`
	DueDateAlt     *string    `json:"dueDate"`
	PayDate        *string    `json:"pay_date"`
	PayDateAlt     *string    `json:"payDate"`
	PaymentMethod  *string    `json:"payment_method"`
	PaymentMethodA *string    `json:"paymentMethod"`
	InterestRate   *br.Number `json:"interest_rate"`
	InterestRateA  *br.Number `json:"interestRate"`
}

// Resolve funde os apelidos nos campos canônicos.
func (r *TransactionRequest) Resolve() {
	if r.DueDate == nil {
		r.DueDate = r.DueDateAlt
	}
	if r.PayDate == nil {
		r.PayDate = r.PayDateAlt
	}
	if r.PaymentMethod == nil {
		r.PaymentMethod = r.PaymentMethodA
	}
	if r.InterestRate == nil {
		r.InterestRate = r.InterestRateA
	}
}

type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Date          string    `json:"date"`
	Amount        br.Number `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Notes         string    `json:"notes"`
	ActionID      string    `json:"action_id,omitempty"`
	Status        string    `json:"status"`
	DueDate       string    `json:"due_date,omitempty"`
	PayDate       string    `json:"pay_date,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	InterestRate  br.Number `json:"interest_rate"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LedgerSummaryResponse struct {
	Count    int       `json:"count"`
	Entradas br.Number `json:"entradas"`
	Saidas   br.Number `json:"saidas"`
	Despesas br.Number `json:"despesas"`
	Saldo    br.Number `json:"saldo"`
}

// AccountEntryRequest conta a pagar/receber.
type AccountEntryRequest struct {
	DueDate      *string    `json:"due_date"`
	Document     *string    `json:"document"`
	Description  *string    `json:"description"`
	Counterparty *string    `json:"counterparty"`
	Category     *string    `json:"category"`
	Amount       *br.Number `json:"amount"`
	PaymentDate  *string    `json:"payment_date"`
	AmountPaid   *br.Number `json:"amount_paid"`
	Cancelled    *bool      `json:"cancelled"`
	Notes        *string    `json:"notes"`
}

// AccountEntryResponse Status e OpenAmount são derivados no momento da leitura.
type AccountEntryResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	DueDate      string    `json:"due_date"`
	Document     string    `json:"document"`
	Description  string    `json:"description"`
	Counterparty string    `json:"counterparty"`
	Category     string    `json:"category"`
	Amount       br.Number `json:"amount"`
	PaymentDate  string    `json:"payment_date,omitempty"`
	AmountPaid   br.Number `json:"amount_paid"`
	OpenAmount   br.Number `json:"open_amount"`
	Cancelled    bool      `json:"cancelled"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AccountSummaryResponse struct {
	Count         int       `json:"count"`
	Total         br.Number `json:"total"`
	Settled       br.Number `json:"liquidado"`
	Open          br.Number `json:"em_aberto"`
	OverdueCount  int       `json:"atrasados"`
	OverdueAmount br.Number `json:"valor_atrasado"`
}
