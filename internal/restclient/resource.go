package restclient

import (
	"context"
	"fmt"
)

// Resource wraps the five REST operations every backend collection exposes.
// Each operation is a single network call against /api/<collection>.
type Resource[T any] struct {
	c          *Client
	collection string
}

// NewResource binds a resource client to one backend collection, e.g.
// NewResource[domain.Category](c, "categories").
func NewResource[T any](c *Client, collection string) *Resource[T] {
	return &Resource[T]{c: c, collection: collection}
}

// Collection returns the collection segment this client is bound to.
func (r *Resource[T]) Collection() string {
	return r.collection
}

func (r *Resource[T]) path() string {
	return "/api/" + r.collection
}

func (r *Resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("/api/%s/%d", r.collection, id)
}

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.c.GetJSON(ctx, r.path(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var row T
	err := r.c.GetJSON(ctx, r.itemPath(id), &row)
	return row, err
}

// Create posts a new record and returns the server's copy.
func (r *Resource[T]) Create(ctx context.Context, payload T) (T, error) {
	var row T
	err := r.c.PostJSON(ctx, r.path(), payload, &row)
	return row, err
}

// Update replaces a record and returns the server's copy.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload T) (T, error) {
	var row T
	err := r.c.PutJSON(ctx, r.itemPath(id), payload, &row)
	return row, err
}

// Delete removes a record.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.c.Delete(ctx, r.itemPath(id))
}
