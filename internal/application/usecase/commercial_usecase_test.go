package usecase_test

import (
	"context"
	"testing"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommercial() *usecase.CommercialUseCase {
	return usecase.NewCommercialUseCase(memory.NewCommercialRecordRepo(), memory.NewOrderRepo(), fixedClock())
}

func item(desc, qty, unit string) dto.OrderItemDTO {
	return dto.OrderItemDTO{Description: desc, Quantity: *num(qty), UnitValue: *num(unit)}
}

func TestCommercialUseCase_CreateOrderPadroes(t *testing.T) {
	uc := newCommercial()

	out, err := uc.CreateOrder(context.Background(), dto.OrderRequest{
		Client: ptr("Padaria Pão Quente"),
		Items:  []dto.OrderItemDTO{item("Panfletos", "1000", "0.15"), item("Promotor", "2", "120")},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultOrderTitle, out.Title)
	assert.Equal(t, entity.OrderStatusAberta, out.Status)
	assert.Equal(t, "2025-03-10", out.Date)
	assert.Equal(t, "390", out.Total.String())
	require.Len(t, out.Items, 2)
	assert.Equal(t, "150", out.Items[0].Subtotal.String())
}

func TestCommercialUseCase_OrderValidacoes(t *testing.T) {
	uc := newCommercial()
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, dto.OrderRequest{Title: ptr("Sem cliente")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(ctx, dto.OrderRequest{Client: ptr("X"), Status: ptr("perdida")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(ctx, dto.OrderRequest{Client: ptr("X"), Items: []dto.OrderItemDTO{item("", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetOrder(ctx, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommercialUseCase_OrderSummaryIgnoraCanceladasNoTotal(t *testing.T) {
	uc := newCommercial()
	ctx := context.Background()

	for _, req := range []dto.OrderRequest{
		{Client: ptr("A"), Total: num("100")},
		{Client: ptr("B"), Total: num("50"), Status: ptr("concluida")},
		{Client: ptr("C"), Total: num("30"), Status: ptr("Cancelada")},
	} {
		_, err := uc.CreateOrder(ctx, req)
		require.NoError(t, err)
	}

	s, err := uc.OrderSummary(ctx, dto.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "150", s.Total.String())
	require.Len(t, s.ByStatus, 3)
	assert.Equal(t, entity.OrderStatusAberta, s.ByStatus[0].Status)
	assert.Equal(t, entity.OrderStatusCancelada, s.ByStatus[2].Status)
	assert.Equal(t, "30", s.ByStatus[2].Total.String())
}
