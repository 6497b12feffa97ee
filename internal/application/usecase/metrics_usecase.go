package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain/campaign"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/finance"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMonths = 6
	maxMonths     = 24
)

var monthAbbr = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MetricsRepos repositórios lidos pelo painel.
type MetricsRepos struct {
	Clients      repository.ClientRepository
	Actions      repository.ActionRepository
	Materials    repository.MaterialRepository
	Vehicles     repository.VehicleRepository
	FuelLogs     repository.FuelLogRepository
	Transactions repository.TransactionRepository
	Accounts     repository.AccountRepository
}

// MetricsUseCase gráficos e cards do painel, com cache opcional.
type MetricsUseCase struct {
	repos MetricsRepos
	cache ports.MetricsCache
	ttl   time.Duration
	clock Clock
}

// NewMetricsUseCase cache nil desliga o cache.
func NewMetricsUseCase(repos MetricsRepos, cache ports.MetricsCache, ttl time.Duration, clock Clock) *MetricsUseCase {
	return &MetricsUseCase{repos: repos, cache: cache, ttl: ttl, clock: clock}
}

// cached read-through: erro do cache só gera log, o valor é calculado mesmo assim.
func cached[T any](ctx context.Context, uc *MetricsUseCase, key string, compute func(context.Context) (T, error)) (T, error) {
	var out T
	if uc.cache != nil {
		hit, err := uc.cache.Get(ctx, key, &out)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache de métricas indisponível")
		} else if hit {
			return out, nil
		}
	}
	out, err := compute(ctx)
	if err != nil {
		return out, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("falha ao gravar cache de métricas")
		}
	}
	return out, nil
}

// ServiceDistribution contagem das tags de tipo por categoria, na ordem fixa das categorias.
func (uc *MetricsUseCase) ServiceDistribution(ctx context.Context) ([]dto.ServiceDistributionItem, error) {
	return cached(ctx, uc, "metrics:service-distribution", func(ctx context.Context) ([]dto.ServiceDistributionItem, error) {
		actions, err := uc.repos.Actions.List(ctx)
		if err != nil {
			return nil, err
		}
		counts := map[string]int{}
		total := 0
		for _, a := range actions {
			for _, t := range a.Types {
				counts[campaign.NormalizeServiceType(t)]++
				total++
			}
		}
		out := make([]dto.ServiceDistributionItem, 0, len(campaign.ServiceCategories))
		for _, cat := range campaign.ServiceCategories {
			pct := decimal.Zero
			if total > 0 {
				pct = decimal.NewFromInt(int64(counts[cat] * 100)).Div(decimal.NewFromInt(int64(total))).Round(1)
			}
			out = append(out, dto.ServiceDistributionItem{Name: cat, Value: counts[cat], Percentage: br.NewNumber(pct)})
		}
		return out, nil
	})
}

// MonthlyCampaigns ações por mês de início nos últimos n meses (o corrente incluso).
func (uc *MetricsUseCase) MonthlyCampaigns(ctx context.Context, months int) ([]dto.MonthlyCampaignItem, error) {
	if months <= 0 {
		months = defaultMonths
	}
	if months > maxMonths {
		months = maxMonths
	}
	today := uc.clock.Today()
	key := fmt.Sprintf("metrics:monthly-campaigns:%d:%s", months, today.Format("2006-01"))
	return cached(ctx, uc, key, func(ctx context.Context) ([]dto.MonthlyCampaignItem, error) {
		actions, err := uc.repos.Actions.List(ctx)
		if err != nil {
			return nil, err
		}
		counts := map[string]int{}
		for _, a := range actions {
			counts[a.StartDate.Format("2006-01")]++
		}
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
		out := make([]dto.MonthlyCampaignItem, 0, months)
		for i := 0; i < months; i++ {
			m := first.AddDate(0, i, 0)
			k := m.Format("2006-01")
			out = append(out, dto.MonthlyCampaignItem{Month: k, Label: MonthLabel(m), Count: counts[k]})
		}
		return out, nil
	})
}

// MonthLabel "Jan/25".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", monthAbbr[t.Month()-1], t.Year()%100)
}

// Dashboard cards do mês corrente. Os valores financeiros só vão para admin e manager.
func (uc *MetricsUseCase) Dashboard(ctx context.Context, actor dto.Actor) (*dto.DashboardResponse, error) {
	full, err := uc.dashboard(ctx)
	if err != nil {
		return nil, err
	}
	out := *full
	if !entity.SeesFinance(actor.Role) {
		out.BalanceMonth = br.Number{}
		out.PayablesOpen = br.Number{}
		out.ReceivablesOpen = br.Number{}
		out.FinanceHidden = true
	}
	return &out, nil
}

// dashboard cada bloco é lido em paralelo.
func (uc *MetricsUseCase) dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	today := uc.clock.Today()
	month := today.Format("2006-01")
	return cached(ctx, uc, "metrics:dashboard:"+today.Format("2006-01-02"), func(ctx context.Context) (*dto.DashboardResponse, error) {
		out := &dto.DashboardResponse{Month: month}
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			clients, err := uc.repos.Clients.List(ctx)
			if err != nil {
				return err
			}
			out.ClientsTotal = len(clients)
			for _, c := range clients {
				if c.Status == entity.ClientStatusAtivo {
					out.ClientsActive++
				}
			}
			return nil
		})
		g.Go(func() error {
			actions, err := uc.repos.Actions.List(ctx)
			if err != nil {
				return err
			}
			for _, a := range actions {
				switch a.Status {
				case entity.ActionStatusProcesso:
					out.ActionsInProgress++
				case entity.ActionStatusAberta:
					out.ActionsOpen++
				}
			}
			return nil
		})
		g.Go(func() error {
			materials, err := uc.repos.Materials.List(ctx)
			if err != nil {
				return err
			}
			sum := decimal.Zero
			for _, m := range materials {
				if query.InMonth(m.Date, month) {
					sum = sum.Add(m.Quantity)
				}
			}
			out.MaterialsMonth = br.NewNumber(sum)
			return nil
		})
		g.Go(func() error {
			vehicles, err := uc.repos.Vehicles.List(ctx)
			if err != nil {
				return err
			}
			for _, v := range vehicles {
				if v.Active {
					out.VehiclesActive++
				}
			}
			return nil
		})
		g.Go(func() error {
			logs, err := uc.repos.FuelLogs.List(ctx)
			if err != nil {
				return err
			}
			sum := decimal.Zero
			for _, l := range logs {
				if query.InMonth(l.Date, month) {
					sum = sum.Add(l.Total)
				}
			}
			out.FuelMonth = br.NewNumber(sum)
			return nil
		})
		g.Go(func() error {
			txs, err := uc.repos.Transactions.List(ctx)
			if err != nil {
				return err
			}
			txs = query.Filter(txs, func(t *entity.Transaction) bool { return query.InMonth(t.Date, month) })
			out.BalanceMonth = br.NewNumber(finance.SummarizeLedger(txs).Saldo)
			return nil
		})
		g.Go(func() error {
			payables, err := uc.repos.Accounts.ListByKind(ctx, entity.AccountPayable)
			if err != nil {
				return err
			}
			receivables, err := uc.repos.Accounts.ListByKind(ctx, entity.AccountReceivable)
			if err != nil {
				return err
			}
			out.PayablesOpen = br.NewNumber(finance.SummarizeAccounts(payables, today).Open)
			out.ReceivablesOpen = br.NewNumber(finance.SummarizeAccounts(receivables, today).Open)
			return nil
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	})
}
