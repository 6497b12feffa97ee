package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/auth"
	"github.com/relampago/backoffice-api/internal/application/export"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ClientUC     *usecase.ClientUseCase
	MaterialUC   *usecase.MaterialUseCase
	ActionUC     *usecase.ActionUseCase
	VacancyUC    *usecase.VacancyUseCase
	FleetUC      *usecase.FleetUseCase
	CommercialUC *usecase.CommercialUseCase
	TxUC         *usecase.TransactionUseCase
	AccountUC    *usecase.AccountUseCase
	MetricsUC    *usecase.MetricsUseCase
	UploadUC     *usecase.UploadUseCase
	ContactUC    *usecase.ContactUseCase
	ExportUC     *export.ExportUseCase
	Site         *SiteHandler
	LoginLimit   *RateLimiter
	ContactLimit *RateLimiter
	JWTSecret    string
}

// Router registra as rotas da API. Rotas estáticas vêm antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Site != nil {
		app.Get("/health", deps.Site.Health)
	}

	api := app.Group("/api")

	// Público
	if deps.Site != nil {
		api.Get("/healthcheck", deps.Site.Health)
		api.Get("/site/config", deps.Site.SiteConfig)
	}

	authHandler := NewAuthHandler(deps.AuthUC)
	login := []fiber.Handler{}
	if deps.LoginLimit != nil {
		login = append(login, deps.LoginLimit.Handler())
	}
	api.Post("/auth/login", append(login, authHandler.Login)...)

	contactHandler := NewContactHandler(deps.ContactUC)
	submit := []fiber.Handler{}
	if deps.ContactLimit != nil {
		submit = append(submit, deps.ContactLimit.Handler())
	}
	api.Post("/contacts", append(submit, contactHandler.Submit)...)

	// Rotas protegidas (Bearer Token), por grupo: caminho inexistente sob /api responde 404.
	requireToken := AuthMiddleware(deps.JWTSecret)
	write := RequireRole(writeRoles...)
	admin := RequireRole(adminOnly...)
	finance := RequireRole(financeRoles...)

	api.Get("/auth/me", requireToken, authHandler.Me)

	// Usuários (admin)
	users := api.Group("/users", requireToken, admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.SetStatus)
	users.Post("/:id/reset-password", userHandler.ResetPassword)
	users.Delete("/:id", userHandler.Delete)

	// Clientes
	clients := api.Group("/clients", requireToken)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/stats", clientHandler.Stats)
	clients.Get("/import/template", clientHandler.ImportTemplate)
	clients.Post("/import", write, clientHandler.Import)
	clients.Get("/", clientHandler.List)
	clients.Post("/", write, clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", write, clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Materiais
	materials := api.Group("/materials", requireToken)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", write, materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", write, materialHandler.Update)
	materials.Delete("/:id", admin, materialHandler.Delete)

	// Ações
	actions := api.Group("/actions", requireToken)
	actionHandler := NewActionHandler(deps.ActionUC)
	actions.Get("/stats", actionHandler.Stats)
	actions.Get("/", actionHandler.List)
	actions.Post("/", write, actionHandler.Create)
	actions.Get("/:id", actionHandler.GetByID)
	actions.Put("/:id", write, actionHandler.Update)
	actions.Delete("/:id", admin, actionHandler.Delete)

	// Vagas
	vacancies := api.Group("/job-vacancies", requireToken)
	vacancyHandler := NewVacancyHandler(deps.VacancyUC)
	vacancies.Get("/", vacancyHandler.List)
	vacancies.Post("/", write, vacancyHandler.Create)
	vacancies.Get("/:id", vacancyHandler.GetByID)
	vacancies.Put("/:id", write, vacancyHandler.Update)
	vacancies.Delete("/:id", admin, vacancyHandler.Delete)

	// Frota
	fleet := api.Group("/fleet", requireToken)
	fleetHandler := NewFleetHandler(deps.FleetUC)
	fleet.Get("/vehicles", fleetHandler.ListVehicles)
	fleet.Post("/vehicles", write, fleetHandler.CreateVehicle)
	fleet.Get("/vehicles/:id", fleetHandler.GetVehicle)
	fleet.Put("/vehicles/:id", write, fleetHandler.UpdateVehicle)
	fleet.Delete("/vehicles/:id", admin, fleetHandler.DeleteVehicle)
	fleet.Get("/fuel-logs/summary", fleetHandler.FuelSummary)
	fleet.Get("/fuel-logs", fleetHandler.ListFuelLogs)
	fleet.Post("/fuel-logs", write, fleetHandler.CreateFuelLog)
	fleet.Get("/fuel-logs/:id", fleetHandler.GetFuelLog)
	fleet.Put("/fuel-logs/:id", write, fleetHandler.UpdateFuelLog)
	fleet.Delete("/fuel-logs/:id", admin, fleetHandler.DeleteFuelLog)

	// Comercial
	commercial := api.Group("/commercial", requireToken)
	commercialHandler := NewCommercialHandler(deps.CommercialUC)
	commercial.Get("/records", commercialHandler.ListRecords)
	commercial.Post("/records", write, commercialHandler.CreateRecord)
	commercial.Get("/records/:id", commercialHandler.GetRecord)
	commercial.Put("/records/:id", write, commercialHandler.UpdateRecord)
	commercial.Delete("/records/:id", admin, commercialHandler.DeleteRecord)
	commercial.Get("/orders/summary", commercialHandler.OrderSummary)
	commercial.Get("/orders", commercialHandler.ListOrders)
	commercial.Post("/orders", write, commercialHandler.CreateOrder)
	commercial.Get("/orders/:id", commercialHandler.GetOrder)
	commercial.Put("/orders/:id", write, commercialHandler.UpdateOrder)
	commercial.Delete("/orders/:id", admin, commercialHandler.DeleteOrder)

	// Financeiro (admin e manager; exclusão só admin)
	transactions := api.Group("/transactions", requireToken, finance)
	txHandler := NewTransactionHandler(deps.TxUC)
	transactions.Get("/summary", txHandler.Summary)
	transactions.Get("/", txHandler.List)
	transactions.Post("/", txHandler.Create)
	transactions.Get("/:id", txHandler.GetByID)
	transactions.Put("/:id", txHandler.Replace)
	transactions.Patch("/:id", txHandler.Patch)
	transactions.Delete("/:id", admin, txHandler.Delete)

	for path, kind := range map[string]string{
		"/contas-pagar":   entity.AccountPayable,
		"/contas-receber": entity.AccountReceivable,
	} {
		g := api.Group(path, requireToken, finance)
		h := NewAccountHandler(deps.AccountUC, kind)
		g.Get("/summary", h.Summary)
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", admin, h.Delete)
	}

	// Métricas
	metrics := api.Group("/metrics", requireToken)
	metricsHandler := NewMetricsHandler(deps.MetricsUC)
	metrics.Get("/service-distribution", metricsHandler.ServiceDistribution)
	metrics.Get("/monthly-campaigns", metricsHandler.MonthlyCampaigns)
	metrics.Get("/dashboard", metricsHandler.Dashboard)

	// Upload e exportação
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", requireToken, write, uploadHandler.Upload)
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/export/:dataset", requireToken, exportHandler.Export)

	// Caixa de entrada de contatos (admin)
	contacts := api.Group("/contacts", requireToken, admin)
	contacts.Get("/", contactHandler.List)
	contacts.Patch("/:id/status", contactHandler.SetStatus)
	contacts.Delete("/:id", contactHandler.Delete)
}
