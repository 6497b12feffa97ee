package repository

import (
	"context"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

// ClientRepository porta de persistência de clientes.
type ClientRepository interface {
	CRUD[entity.Client]
	// GetByEmail busca ignorando maiúsculas/minúsculas.
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
}
