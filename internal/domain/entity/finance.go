package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TxEntrada = "entrada"
	TxSaida   = "saida"
	TxDespesa = "despesa"

	TxStatusPago      = "Pago"
	TxStatusPendente  = "Pendente"
	TxStatusCancelado = "Cancelado"
)

// Transaction lançamento do livro-caixa.
type Transaction struct {
	ID            string
	Type          string
	Date          time.Time
	Amount        decimal.Decimal
	Category      string
	Description   string
	Notes         string
	ActionID      string
	Status        string
	DueDate       *time.Time
	PayDate       *time.Time
	PaymentMethod string
	InterestRate  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	AccountPayable    = "pagar"
	AccountReceivable = "receber"
)

// AccountEntry conta a pagar ou a receber. O status não é armazenado: é derivado na leitura.
type AccountEntry struct {
	ID           string
	Kind         string
	DueDate      time.Time
	Document     string
	Description  string
	Counterparty string
	Category     string
	Amount       decimal.Decimal
	PaymentDate  *time.Time
	AmountPaid   decimal.Decimal
	Cancelled    bool
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
