// Package bootstrap monta casos de uso, middlewares e rotas a partir dos
// repositórios e adaptadores escolhidos em cmd/api (ou nos testes).
package bootstrap

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/relampago/backoffice-api/internal/application/auth"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/export"
	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	infraexport "github.com/relampago/backoffice-api/internal/infrastructure/export"
	"github.com/relampago/backoffice-api/internal/infrastructure/observability"
	"github.com/relampago/backoffice-api/internal/infrastructure/pdf"
	"github.com/relampago/backoffice-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/relampago/backoffice-api/internal/interfaces/http"
	"github.com/relampago/backoffice-api/pkg/config"
)

// Adapters adaptadores opcionais; nil desliga o recurso (cache, e-mail, health do banco).
type Adapters struct {
	Storage  ports.FileStorage
	Cache    ports.MetricsCache
	Notifier ports.ContactNotifier
	DB       httpRouter.Pinger
	Clock    *usecase.Clock
}

// Services casos de uso montados, expostos para o seed e para os testes.
type Services struct {
	Auth       *auth.AuthUseCase
	Users      *usecase.UserUseCase
	Clients    *usecase.ClientUseCase
	Materials  *usecase.MaterialUseCase
	Actions    *usecase.ActionUseCase
	Vacancies  *usecase.VacancyUseCase
	Fleet      *usecase.FleetUseCase
	Commercial *usecase.CommercialUseCase
	Tx         *usecase.TransactionUseCase
	Accounts   *usecase.AccountUseCase
	Metrics    *usecase.MetricsUseCase
	Upload     *usecase.UploadUseCase
	Contacts   *usecase.ContactUseCase
	Export     *export.ExportUseCase
}

// NewServices instancia os casos de uso.
func NewServices(cfg *config.Config, repos Repositories, ad Adapters, metrics *observability.Metrics) *Services {
	clock := usecase.NewClock(location(cfg.App.Timezone))
	if ad.Clock != nil {
		clock = *ad.Clock
	}
	cache := ad.Cache
	if cache != nil && metrics != nil {
		cache = metrics.InstrumentCache(cache)
	}

	s := &Services{
		Auth: auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		Users:      usecase.NewUserUseCase(repos.Users),
		Clients:    usecase.NewClientUseCase(repos.Clients, repos.Tx, spreadsheet.Reader{}),
		Materials:  usecase.NewMaterialUseCase(repos.Materials),
		Actions:    usecase.NewActionUseCase(repos.Actions, repos.Clients),
		Vacancies:  usecase.NewVacancyUseCase(repos.Vacancies),
		Fleet:      usecase.NewFleetUseCase(repos.Vehicles, repos.FuelLogs),
		Commercial: usecase.NewCommercialUseCase(repos.Records, repos.Orders, clock),
		Tx:         usecase.NewTransactionUseCase(repos.Transactions),
		Accounts:   usecase.NewAccountUseCase(repos.Accounts, clock),
		Metrics: usecase.NewMetricsUseCase(usecase.MetricsRepos{
			Clients:      repos.Clients,
			Actions:      repos.Actions,
			Materials:    repos.Materials,
			Vehicles:     repos.Vehicles,
			FuelLogs:     repos.FuelLogs,
			Transactions: repos.Transactions,
			Accounts:     repos.Accounts,
		}, cache, time.Duration(cfg.Redis.TTLSeconds)*time.Second, clock),
		Upload:   usecase.NewUploadUseCase(ad.Storage, int64(cfg.Upload.MaxBytes)),
		Contacts: usecase.NewContactUseCase(repos.Contacts, ad.Notifier),
	}
	s.Export = export.NewExportUseCase(export.Sources{
		Clients:      s.Clients,
		Materials:    s.Materials,
		Actions:      s.Actions,
		Vacancies:    s.Vacancies,
		Fleet:        s.Fleet,
		Commercial:   s.Commercial,
		Transactions: s.Tx,
		Accounts:     s.Accounts,
		Users:        s.Users,
	}, map[export.Format]export.Renderer{
		export.FormatCSV:  infraexport.CSVRenderer{},
		export.FormatJSON: infraexport.JSONRenderer{},
		export.FormatPDF:  pdf.NewTableRenderer(cfg.App.Name),
	}, clock)
	return s
}

// NewApp cria o fiber.App com middlewares e rotas. Swagger e arquivos estáticos ficam a cargo de cmd/api.
func NewApp(cfg *config.Config, repos Repositories, ad Adapters) (*fiber.App, *Services) {
	metrics := observability.NewMetrics()
	svc := NewServices(cfg, repos, ad, metrics)

	// Immutable: strings da requisição são guardadas além do handler (repositórios em memória, limiter).
	// ProxyHeader só vale para conexões vindas de TrustedProxies.
	app := fiber.New(fiber.Config{
		AppName:                 cfg.App.Name,
		ReadTimeout:             30 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             60 * time.Second,
		BodyLimit:               cfg.Upload.MaxBytes + 1024*1024,
		ErrorHandler:            httpRouter.ErrorHandler,
		Immutable:               true,
		ProxyHeader:             cfg.HTTP.ProxyHeader,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.HTTP.TrustedProxies,
		EnableIPValidation:      true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: func() string { return uuid.New().String() }}))
	app.Use(httpRouter.RequestLogger())
	app.Use(metrics.Middleware())
	app.Use(cors.New(corsConfig(cfg.CORS.Origins)))

	app.Get("/metrics", metrics.Handler())

	rl := func() *httpRouter.RateLimiter {
		return httpRouter.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       svc.Auth,
		UserUC:       svc.Users,
		ClientUC:     svc.Clients,
		MaterialUC:   svc.Materials,
		ActionUC:     svc.Actions,
		VacancyUC:    svc.Vacancies,
		FleetUC:      svc.Fleet,
		CommercialUC: svc.Commercial,
		TxUC:         svc.Tx,
		AccountUC:    svc.Accounts,
		MetricsUC:    svc.Metrics,
		UploadUC:     svc.Upload,
		ContactUC:    svc.Contacts,
		ExportUC:     svc.Export,
		Site: httpRouter.NewSiteHandler(cfg.App.Name, ad.DB, dto.SiteConfigResponse{
			APIBaseURL:   cfg.Site.APIBaseURL,
			DashboardURL: cfg.Site.DashboardURL,
		}),
		LoginLimit:   rl(),
		ContactLimit: rl(),
		JWTSecret:    cfg.JWT.Secret,
	})
	return app, svc
}

func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" || origins == "*" {
		return cors.Config{AllowOrigins: "*", ExposeHeaders: "Authorization, Content-Disposition"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Authorization, Content-Disposition",
	}
}

func location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
