package repository

import (
	"context"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

type MaterialRepository interface {
	CRUD[entity.Material]
}

// ActionRepository porta de persistência das ações promocionais.
type ActionRepository interface {
	CRUD[entity.Action]
	// CountByClient conta ações vinculadas ao cliente (bloqueia exclusão do cliente).
	CountByClient(ctx context.Context, clientID string) (int, error)
}

type VacancyRepository interface {
	CRUD[entity.Vacancy]
}

type ContactRepository interface {
	CRUD[entity.Contact]
}
