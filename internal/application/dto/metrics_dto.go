package dto

import (
	"github.com/relampago/backoffice-api/pkg/br"
)

type ServiceDistributionItem struct {
	Name       string    `json:"name"`
	Value      int       `json:"value"`
	Percentage br.Number `json:"percentage"`
}

type MonthlyCampaignItem struct {
	Month string `json:"month"` // AAAA-MM
	Label string `json:"label"` // Jan/25
	Count int    `json:"count"`
}

// DashboardResponse cards do painel principal (mês corrente no fuso configurado).
type DashboardResponse struct {
	ClientsTotal      int       `json:"clients_total"`
	ClientsActive     int       `json:"clients_active"`
	ActionsInProgress int       `json:"actions_in_progress"`
	ActionsOpen       int       `json:"actions_open"`
	MaterialsMonth    br.Number `json:"materials_month"`
	VehiclesActive    int       `json:"vehicles_active"`
	FuelMonth         br.Number `json:"fuel_month"`
	BalanceMonth      br.Number `json:"balance_month"`
	PayablesOpen      br.Number `json:"payables_open"`
	ReceivablesOpen   br.Number `json:"receivables_open"`
	Month             string    `json:"month"`
	FinanceHidden     bool      `json:"finance_hidden"`
}

// UploadResponse arquivo salvo no armazenamento.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format"`
	Bytes    int64  `json:"bytes"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type SiteConfigResponse struct {
	APIBaseURL   string `json:"api_base_url"`
	DashboardURL string `json:"dashboard_url"`
}
