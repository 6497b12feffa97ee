package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Page metadados de paginação das listagens.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// List envelope das listagens: {items, page}.
type List[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
}

// Resource CRUD tipado sobre um caminho da API (clients, materials, fleet/vehicles...).
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: "/" + strings.Trim(path, "/")}
}

// List filtros como na query string: q, status, de, ate, month, limit, offset.
func (r *Resource[T]) List(ctx context.Context, filters url.Values) (*List[T], error) {
	p := r.path
	if len(filters) > 0 {
		p += "?" + filters.Encode()
	}
	var out List[T]
	if err := r.c.Do(ctx, http.MethodGet, p, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.Do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Create(ctx context.Context, in any) (*T, error) {
	var out T
	if err := r.c.Do(ctx, http.MethodPost, r.path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, id string, in any) (*T, error) {
	var out T
	if err := r.c.Do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil)
}

// PageFilter atalho para limit/offset.
func PageFilter(limit, offset int) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(offset))
	return v
}
