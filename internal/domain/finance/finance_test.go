package finance

import (
	"testing"
	"time"

	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoje = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDeriveStatus_Pago(t *testing.T) {
	assert.Equal(t, StatusPago, DeriveStatus(dec(100), dec(100), hoje.AddDate(0, 0, -30), false, hoje))
	assert.Equal(t, StatusPago, DeriveStatus(dec(100), dec(120), hoje, false, hoje))
}

func TestDeriveStatus_VencidoComPagamentoParcial(t *testing.T) {
	assert.Equal(t, StatusVencido, DeriveStatus(dec(100), dec(40), hoje.AddDate(0, 0, -1), false, hoje))
}

func TestDeriveStatus_PendenteAteOVencimento(t *testing.T) {
	assert.Equal(t, StatusPendente, DeriveStatus(dec(100), dec(0), hoje, false, hoje))
	assert.Equal(t, StatusPendente, DeriveStatus(dec(100), dec(0), hoje.AddDate(0, 1, 0), false, hoje))
}

func TestDeriveStatus_CanceladoPrevalece(t *testing.T) {
	assert.Equal(t, StatusCancelado, DeriveStatus(dec(100), dec(100), hoje.AddDate(0, 0, -5), true, hoje))
}

func TestDeriveStatus_IgnoraHoraDoDia(t *testing.T) {
	due := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusPendente, DeriveStatus(dec(10), dec(0), due, false, today))
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("Vencida")
	require.True(t, ok)
	assert.Equal(t, StatusVencido, s)
	s, ok = ParseStatus("Recebido")
	require.True(t, ok)
	assert.Equal(t, StatusPago, s)
	_, ok = ParseStatus("talvez")
	assert.False(t, ok)
}

func TestSummarizeAccounts(t *testing.T) {
	entries := []*entity.AccountEntry{
		{Amount: dec(100), AmountPaid: dec(100), DueDate: hoje.AddDate(0, 0, -10)},
		{Amount: dec(100), AmountPaid: dec(40), DueDate: hoje.AddDate(0, 0, -1)},
		{Amount: dec(50), AmountPaid: dec(0), DueDate: hoje.AddDate(0, 0, 3)},
		{Amount: dec(80), AmountPaid: dec(0), DueDate: hoje.AddDate(0, 0, -3), Cancelled: true},
		{Amount: dec(30), AmountPaid: dec(45), DueDate: hoje},
	}
	s := SummarizeAccounts(entries, hoje)

	assert.Equal(t, 4, s.Count)
	assert.True(t, dec(280).Equal(s.Total), s.Total.String())
	assert.True(t, dec(170).Equal(s.Settled), s.Settled.String())
	assert.True(t, dec(110).Equal(s.Open), s.Open.String())
	assert.Equal(t, 1, s.OverdueCount)
	assert.True(t, dec(60).Equal(s.OverdueAmount))
}

func TestSummarizeLedger_SaldoDoExemplo(t *testing.T) {
	var txs []*entity.Transaction
	for i := 0; i < 3; i++ {
		txs = append(txs, &entity.Transaction{Type: entity.TxEntrada, Amount: dec(100), Status: entity.TxStatusPago})
	}
	for i := 0; i < 2; i++ {
		txs = append(txs, &entity.Transaction{Type: entity.TxSaida, Amount: dec(50), Status: entity.TxStatusPago})
	}
	s := SummarizeLedger(txs)

	assert.Equal(t, 5, s.Count)
	assert.True(t, dec(200).Equal(s.Saldo), s.Saldo.String())
	assert.True(t, s.Entradas.Sub(s.Saidas.Add(s.Despesas)).Equal(s.Saldo))
}

func TestSummarizeLedger_DespesaECanceladoFora(t *testing.T) {
	txs := []*entity.Transaction{
		{Type: entity.TxEntrada, Amount: dec(500), Status: entity.TxStatusPendente},
		{Type: entity.TxDespesa, Amount: dec(120), Status: entity.TxStatusPago},
		{Type: entity.TxSaida, Amount: dec(999), Status: entity.TxStatusCancelado},
	}
	s := SummarizeLedger(txs)
	assert.Equal(t, 2, s.Count)
	assert.True(t, dec(380).Equal(s.Saldo))
	assert.True(t, s.Saidas.IsZero())
}

func TestNormalizeTxType(t *testing.T) {
	got, err := NormalizeTxType("Saída")
	require.NoError(t, err)
	assert.Equal(t, entity.TxSaida, got)

	got, err = NormalizeTxType("")
	require.NoError(t, err)
	assert.Equal(t, entity.TxEntrada, got)

	_, err = NormalizeTxType("transferência")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeTxStatus(t *testing.T) {
	got, err := NormalizeTxStatus("pago")
	require.NoError(t, err)
	assert.Equal(t, entity.TxStatusPago, got)

	got, err = NormalizeTxStatus("")
	require.NoError(t, err)
	assert.Equal(t, entity.TxStatusPendente, got)

	_, err = NormalizeTxStatus("estornado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
