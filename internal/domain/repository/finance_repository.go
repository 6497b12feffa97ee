package repository

import (
	"context"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

type TransactionRepository interface {
	CRUD[entity.Transaction]
}

// AccountRepository contas a pagar e a receber, separadas por Kind.
// GetByID ignora o kind; o caso de uso confere se bate com a rota.
type AccountRepository interface {
	CRUD[entity.AccountEntry]
	ListByKind(ctx context.Context, kind string) ([]*entity.AccountEntry, error)
}
