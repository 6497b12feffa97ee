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

// ─────────────────────────────────────────────────────────────
// Ações
// ─────────────────────────────────────────────────────────────

func action(start string) dto.ActionRequest {
	return dto.ActionRequest{
		ClientName: ptr("Padaria Pão Quente"),
		Types:      []string{"panfletagem"},
		StartDate:  ptr(start),
	}
}

func TestActionUseCase_TerminoAntesDoInicio(t *testing.T) {
	uc := usecase.NewActionUseCase(memory.NewActionRepo(), memory.NewClientRepo())

	req := action("10/03/2025")
	req.EndDate = ptr("09/03/2025")
	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.EndDate = ptr("10/03/2025")
	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", out.EndDate)
}

func TestActionUseCase_StatusAguardandoViraEmAberto(t *testing.T) {
	uc := usecase.NewActionUseCase(memory.NewActionRepo(), memory.NewClientRepo())

	req := action("2025-03-10")
	req.Status = ptr("Aguardando")
	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionStatusAberta, out.Status)

	req.Status = ptr("pausada")
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActionUseCase_VinculoComClientePreencheNome(t *testing.T) {
	ctx := context.Background()
	clients := memory.NewClientRepo()
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "c1", Name: "Mercado Central", Company: "Central LTDA", Email: "m@central.com"}))
	uc := usecase.NewActionUseCase(memory.NewActionRepo(), clients)

	out, err := uc.Create(ctx, dto.ActionRequest{ClientID: ptr("c1"), Types: []string{"eventos"}, StartDate: ptr("2025-03-10")})
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", out.ClientName)
	assert.Equal(t, "Central LTDA", out.CompanyName)

	_, err = uc.Create(ctx, dto.ActionRequest{ClientID: ptr("nao-existe"), Types: []string{"eventos"}, StartDate: ptr("2025-03-10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActionUseCase_ExigeTipoEPeriodoValido(t *testing.T) {
	uc := usecase.NewActionUseCase(memory.NewActionRepo(), memory.NewClientRepo())

	semTipo := action("2025-03-10")
	semTipo.Types = []string{" "}
	_, err := uc.Create(context.Background(), semTipo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	periodo := action("2025-03-10")
	periodo.DayPeriods = []string{"madrugada"}
	_, err = uc.Create(context.Background(), periodo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────────────────────
// Materiais e vagas
// ─────────────────────────────────────────────────────────────

func TestMaterialUseCase_QuantidadePositiva(t *testing.T) {
	uc := usecase.NewMaterialUseCase(memory.NewMaterialRepo())
	ctx := context.Background()

	for _, q := range []string{"0", "-5"} {
		_, err := uc.Create(ctx, dto.MaterialRequest{Date: ptr("10/03/2025"), Quantity: num(q), ClientName: ptr("Loja A")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade %s", q)
	}

	out, err := uc.Create(ctx, dto.MaterialRequest{Date: ptr("10/03/2025"), Quantity: num("1500"), ClientName: ptr("Loja A")})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", out.Date)
	assert.Equal(t, "1500", out.Quantity.String())

	_, err = uc.Create(ctx, dto.MaterialRequest{Date: ptr("31/02/2025"), Quantity: num("1"), ClientName: ptr("Loja A")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "data inexistente")
}

func TestVacancyUseCase_StatusPadraoAberta(t *testing.T) {
	uc := usecase.NewVacancyUseCase(memory.NewVacancyRepo())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.VacancyRequest{IndicationName: ptr("João"), Role: ptr("Promotor")})
	require.NoError(t, err)
	assert.Equal(t, entity.VacancyStatusAberta, out.Status)

	upd, err := uc.Update(ctx, out.ID, dto.VacancyRequest{Status: ptr("em avaliacao")})
	require.NoError(t, err)
	assert.Equal(t, entity.VacancyStatusAvaliacao, upd.Status)
	assert.Equal(t, "João", upd.IndicationName)

	_, err = uc.Create(ctx, dto.VacancyRequest{Role: ptr("Promotor")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
