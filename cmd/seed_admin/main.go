// seed_admin cria (ou redefine) o usuário administrador direto no banco.
//
// Uso: go run ./cmd/seed_admin -email admin@relampago.com -password segredo [-name Nome] [-reset]
// Sem flags usa ADMIN_SEED_NAME, ADMIN_SEED_EMAIL e ADMIN_SEED_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/relampago/backoffice-api/internal/application/auth"
	"github.com/relampago/backoffice-api/internal/infrastructure/postgres"
	"github.com/relampago/backoffice-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuração: %v\n", err)
		os.Exit(1)
	}

	name := flag.String("name", cfg.AdminSeed.Name, "nome do administrador")
	email := flag.String("email", cfg.AdminSeed.Email, "e-mail de login")
	password := flag.String("password", cfg.AdminSeed.Password, "senha inicial")
	reset := flag.Bool("reset", false, "redefine a senha se o e-mail já existir")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Informe -email e -password (ou ADMIN_SEED_EMAIL/ADMIN_SEED_PASSWORD)")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			fmt.Fprintf(os.Stderr, "Migrações: %v\n", err)
			os.Exit(1)
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexão: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
	created, err := uc.SeedAdmin(ctx, *name, *email, *password, *reset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	switch {
	case created:
		fmt.Printf("Administrador %s criado\n", *email)
	case *reset:
		fmt.Printf("Senha de %s redefinida\n", *email)
	default:
		fmt.Printf("%s já existe; use -reset para redefinir a senha\n", *email)
	}
}
