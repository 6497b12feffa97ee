// Package memory repositórios em memória, usados nos testes e com DB_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/relampago/backoffice-api/internal/domain"
)

// Store CRUD genérico protegido por RWMutex. Guarda e devolve cópias rasas.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
	id    func(*T) string
}

// NewStore id extrai a chave primária do registro.
func NewStore[T any](id func(*T) string) *Store[T] {
	return &Store[T]{items: map[string]*T{}, id: id}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func (s *Store[T]) Create(_ context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.id(v)
	if _, ok := s.items[k]; ok {
		return domain.ErrDuplicate
	}
	s.items[k] = clone(v)
	s.order = append(s.order, k)
	return nil
}

func (s *Store[T]) GetByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

// List na ordem de inserção.
func (s *Store[T]) List(_ context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, clone(s.items[k]))
	}
	return out, nil
}

func (s *Store[T]) Update(_ context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.id(v)
	if _, ok := s.items[k]; !ok {
		return domain.ErrNotFound
	}
	s.items[k] = clone(v)
	return nil
}

func (s *Store[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// find primeiro registro que satisfaz match.
func (s *Store[T]) find(match func(*T) bool) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range s.order {
		if v := s.items[k]; match(v) {
			return clone(v)
		}
	}
	return nil
}

func (s *Store[T]) count(match func(*T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, v := range s.items {
		if match(v) {
			n++
		}
	}
	return n
}
