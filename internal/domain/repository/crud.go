package repository

import "context"

// CRUD é o contrato básico de persistência compartilhado pelos cadastros.
// GetByID devolve (nil, nil) quando o registro não existe; Update e Delete
// devolvem domain.ErrNotFound nesse caso.
type CRUD[T any] interface {
	Create(ctx context.Context, v *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id string) error
}
