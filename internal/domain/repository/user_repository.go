package repository

import (
	"context"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

// UserRepository porta de persistência de usuários.
type UserRepository interface {
	CRUD[entity.User]
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
