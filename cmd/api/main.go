package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/relampago/backoffice-api/internal/bootstrap"
	"github.com/relampago/backoffice-api/internal/infrastructure/cache"
	"github.com/relampago/backoffice-api/internal/infrastructure/mail"
	"github.com/relampago/backoffice-api/internal/infrastructure/postgres"
	"github.com/relampago/backoffice-api/internal/infrastructure/storage"
	"github.com/relampago/backoffice-api/pkg/config"
	"github.com/relampago/backoffice-api/pkg/logger"

	_ "github.com/relampago/backoffice-api/docs"
)

// @title       Relâmpago Backoffice API
// @version     1.0
// @description API do painel administrativo da Relâmpago.
// @BasePath    /
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicação")

	ctx := context.Background()

	var repos bootstrap.Repositories
	var adapters bootstrap.Adapters
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: dados não persistem entre reinícios")
		repos = bootstrap.MemoryRepositories()
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migrações")
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com PostgreSQL")
		}
		defer pool.Close()
		repos = bootstrap.PostgresRepositories(pool)
		adapters.DB = pool
	}

	if cfg.Redis.URL != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis indisponível, métricas sem cache")
		} else {
			defer rdb.Close()
			adapters.Cache = cache.NewRedisCache(rdb)
		}
	}
	if cfg.Mail.Host != "" {
		adapters.Notifier = mail.NewSMTPNotifier(cfg.Mail)
	}

	files, err := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath, cfg.Upload.PublicBase)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("diretório de uploads")
	}
	adapters.Storage = files

	app, svc := bootstrap.NewApp(cfg, repos, adapters)

	// Swagger UI: http://localhost:<port>/swagger
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "swagger",
		Title:    "Relâmpago Backoffice API",
	}))
	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	if cfg.AdminSeed.Enabled() {
		created, err := svc.Auth.SeedAdmin(ctx, cfg.AdminSeed.Name, cfg.AdminSeed.Email, cfg.AdminSeed.Password, false)
		if err != nil {
			log.Error().Err(err).Msg("seed do administrador")
		} else if created {
			log.Info().Str("email", cfg.AdminSeed.Email).Msg("administrador criado")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
