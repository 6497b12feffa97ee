package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain/campaign"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache guarda JSON como o cache Redis faz.
type fakeCache struct {
	data     map[string][]byte
	gets     int
	sets     int
	failWith error
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.failWith != nil {
		return false, c.failWith
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	c.sets++
	if c.failWith != nil {
		return c.failWith
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func metricsFor(repos *memory.Repos, cache *fakeCache) *usecase.MetricsUseCase {
	mr := usecase.MetricsRepos{
		Clients:      repos.Clients,
		Actions:      repos.Actions,
		Materials:    repos.Materials,
		Vehicles:     repos.Vehicles,
		FuelLogs:     repos.FuelLogs,
		Transactions: repos.Transactions,
		Accounts:     repos.Accounts,
	}
	if cache == nil {
		return usecase.NewMetricsUseCase(mr, nil, time.Minute, fixedClock())
	}
	return usecase.NewMetricsUseCase(mr, cache, time.Minute, fixedClock())
}

func addAction(t *testing.T, repos *memory.Repos, start time.Time, types ...string) {
	t.Helper()
	a := &entity.Action{ID: start.Format(time.RFC3339Nano) + types[0], Types: types, StartDate: start, CreatedAt: start}
	require.NoError(t, repos.Actions.Create(context.Background(), a))
}

func TestMetricsUseCase_ServiceDistribution(t *testing.T) {
	repos := memory.NewRepos()
	addAction(t, repos, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "panfletagem", "Sinaleiros")
	addAction(t, repos, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "Porta a porta", "drone")

	out, err := metricsFor(repos, nil).ServiceDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, out, len(campaign.ServiceCategories))

	assert.Equal(t, campaign.ServiceResidencial, out[0].Name)
	assert.Equal(t, 2, out[0].Value)
	assert.Equal(t, "50", out[0].Percentage.String())
	assert.Equal(t, 1, out[1].Value)
	assert.Equal(t, campaign.ServiceOutros, out[4].Name)
	assert.Equal(t, 1, out[4].Value)
}

func TestMetricsUseCase_MonthlyCampaignsJanela(t *testing.T) {
	repos := memory.NewRepos()
	addAction(t, repos, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "eventos")
	addAction(t, repos, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "eventos")
	addAction(t, repos, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "eventos") // fora da janela

	out, err := metricsFor(repos, nil).MonthlyCampaigns(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "2025-01", out[0].Month)
	assert.Equal(t, "Jan/25", out[0].Label)
	assert.Equal(t, 1, out[0].Count)
	assert.Equal(t, 0, out[1].Count)
	assert.Equal(t, "Mar/25", out[2].Label)
	assert.Equal(t, 1, out[2].Count)
}

// ─────────────────────────────────────────────────────────────
// Cache read-through
// ─────────────────────────────────────────────────────────────

func TestMetricsUseCase_UsaCacheNaSegundaLeitura(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepos()
	cache := newFakeCache()
	uc := metricsFor(repos, cache)
	addAction(t, repos, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "eventos")

	first, err := uc.ServiceDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	addAction(t, repos, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "eventos")
	second, err := uc.ServiceDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "valor servido do cache")
	assert.Equal(t, first[2].Value, second[2].Value)
}

func TestMetricsUseCase_CacheIndisponivelNaoDerrubaLeitura(t *testing.T) {
	repos := memory.NewRepos()
	cache := newFakeCache()
	cache.failWith = errors.New("conexão recusada")
	addAction(t, repos, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "eventos")

	out, err := metricsFor(repos, cache).ServiceDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out[2].Value)
	assert.Equal(t, 1, cache.gets)
}

// ─────────────────────────────────────────────────────────────
// Painel
// ─────────────────────────────────────────────────────────────

func TestMetricsUseCase_DashboardOcultaFinanceiroPorPapel(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepos()
	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Transactions.Create(ctx, &entity.Transaction{ID: "t1", Type: entity.TxEntrada, Date: march, Amount: decimal.NewFromInt(300), Status: entity.TxStatusPago}))
	require.NoError(t, repos.Accounts.Create(ctx, &entity.AccountEntry{ID: "p1", Kind: entity.AccountPayable, DueDate: march, Amount: decimal.NewFromInt(80)}))
	require.NoError(t, repos.Actions.Create(ctx, &entity.Action{ID: "a1", Types: []string{"eventos"}, StartDate: march, Status: entity.ActionStatusAberta}))
	uc := metricsFor(repos, newFakeCache())

	full, err := uc.Dashboard(ctx, dto.Actor{UserID: "u1", Role: entity.RoleManager})
	require.NoError(t, err)
	assert.False(t, full.FinanceHidden)
	assert.Equal(t, "300", full.BalanceMonth.String())
	assert.Equal(t, "80", full.PayablesOpen.String())

	// a segunda leitura vem do cache e ainda assim é filtrada
	for _, role := range []string{entity.RoleViewer, entity.RoleSupervisor} {
		out, err := uc.Dashboard(ctx, dto.Actor{UserID: "u2", Role: role})
		require.NoError(t, err)
		assert.True(t, out.FinanceHidden, role)
		assert.True(t, out.BalanceMonth.IsZero(), role)
		assert.True(t, out.PayablesOpen.IsZero(), role)
		assert.True(t, out.ReceivablesOpen.IsZero(), role)
		assert.Equal(t, 1, out.ActionsOpen, role)
	}

	again, err := uc.Dashboard(ctx, dto.Actor{UserID: "u1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "300", again.BalanceMonth.String())
}
