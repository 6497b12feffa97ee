// Package ports contratos de saída da camada de aplicação. Os adaptadores
// concretos (Postgres, Redis, SMTP, disco, planilhas) ficam em infrastructure.
package ports

import (
	"context"
	"io"
	"time"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

// TxRunner executa fn numa transação, com repositórios atados a ela.
// Usado na exclusão de cliente: conferir ações vinculadas e apagar precisam ser atômicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clients repository.ClientRepository,
		actions repository.ActionRepository,
	) error) error
}

// MetricsCache cache read-through das métricas. Get devolve false quando a chave não existe.
type MetricsCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// ContactNotifier avisa a equipe sobre um novo contato do site.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, c *entity.Contact) error
}

// SheetReader lê uma planilha (.csv ou .xlsx) e devolve as linhas da primeira aba.
type SheetReader interface {
	ReadRows(filename string, r io.Reader) ([][]string, error)
}

// FileStorage grava um arquivo enviado e devolve a URL pública.
type FileStorage interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
