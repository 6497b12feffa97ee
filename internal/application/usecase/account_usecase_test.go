package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/relampago/backoffice-api/pkg/br"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock "hoje" = 10/03/2025.
func fixedClock() usecase.Clock {
	return usecase.Clock{
		Loc:     time.UTC,
		NowFunc: func() time.Time { return time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC) },
	}
}

func ptr[T any](v T) *T { return &v }

func num(s string) *br.Number {
	n := br.NewNumber(decimal.RequireFromString(s))
	return &n
}

func entry(due, amount, paid string, cancelled bool) dto.AccountEntryRequest {
	return dto.AccountEntryRequest{
		DueDate:     ptr(due),
		Description: ptr("Conta " + due),
		Amount:      num(amount),
		AmountPaid:  num(paid),
		Cancelled:   ptr(cancelled),
	}
}

// ─────────────────────────────────────────────────────────────
// Status derivado
// ─────────────────────────────────────────────────────────────

func TestAccountUseCase_StatusDerivadoNaData(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(memory.NewAccountRepo(), fixedClock())

	casos := []struct {
		nome string
		req  dto.AccountEntryRequest
		want string
	}{
		{"vencida sem pagamento", entry("01/03/2025", "100", "0", false), "vencido"},
		{"paga integralmente", entry("2025-03-01", "100", "100", false), "pago"},
		{"vence hoje", entry("10/03/2025", "100", "40", false), "pendente"},
		{"cancelada", entry("01/01/2025", "100", "0", true), "cancelado"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			out, err := uc.Create(ctx, entity.AccountPayable, c.req)
			require.NoError(t, err)
			assert.Equal(t, c.want, out.Status)
		})
	}
}

func TestAccountUseCase_Validacoes(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(memory.NewAccountRepo(), fixedClock())

	_, err := uc.Create(ctx, entity.AccountReceivable, dto.AccountEntryRequest{Amount: num("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem vencimento")

	_, err = uc.Create(ctx, entity.AccountReceivable, entry("10/03/2025", "0", "0", false))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor zero")

	_, err = uc.Create(ctx, "outro", entry("10/03/2025", "10", "0", false))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo inválido")
}

func TestAccountUseCase_KindDaRotaIsolaContas(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(memory.NewAccountRepo(), fixedClock())

	pagar, err := uc.Create(ctx, entity.AccountPayable, entry("10/03/2025", "10", "0", false))
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, entity.AccountReceivable, pagar.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, entity.AccountReceivable, pagar.ID), domain.ErrNotFound)
	assert.NoError(t, uc.Delete(ctx, entity.AccountPayable, pagar.ID))
}

// ─────────────────────────────────────────────────────────────
// Resumo
// ─────────────────────────────────────────────────────────────

func TestAccountUseCase_Summary(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(memory.NewAccountRepo(), fixedClock())

	for _, req := range []dto.AccountEntryRequest{
		entry("01/03/2025", "100", "30", false), // vencida, 70 em aberto
		entry("20/03/2025", "200", "200", false),
		entry("01/04/2025", "50", "0", false),
		entry("01/02/2025", "80", "0", true), // cancelada, fora do resumo
	} {
		_, err := uc.Create(ctx, entity.AccountReceivable, req)
		require.NoError(t, err)
	}

	s, err := uc.Summary(ctx, entity.AccountReceivable, dto.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "350", s.Total.String())
	assert.Equal(t, "230", s.Settled.String())
	assert.Equal(t, "120", s.Open.String())
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, "70", s.OverdueAmount.String())

	vencidas, err := uc.List(ctx, entity.AccountReceivable, dto.ListFilter{Status: "Vencida"})
	require.NoError(t, err)
	require.Len(t, vencidas.Items, 1)
	assert.Equal(t, "vencido", vencidas.Items[0].Status)

	_, err = uc.List(ctx, entity.AccountReceivable, dto.ListFilter{Status: "talvez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
