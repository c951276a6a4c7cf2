package gateway

import (
	"context"
	"net/http"
)

// Resource is a typed view over one /api collection.
type Resource[E any] struct {
	client *Client
	path   string
}

// NewResource creates a typed client for /api/<name>.
func NewResource[E any](client *Client, name string) *Resource[E] {
	return &Resource[E]{
		client: client,
		path:   "/api/" + name,
	}
}

// List fetches the collection. Query is appended verbatim when set
// (e.g. "search=volvo&status=active").
func (r *Resource[E]) List(ctx context.Context, query string) (List[E], error) {
	path := r.path
	if query != "" {
		path += "?" + query
	}
	var out List[E]
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return List[E]{}, err
	}
	return out, nil
}

// Create posts a new record and returns the stored version.
func (r *Resource[E]) Create(ctx context.Context, item E) (E, error) {
	var out E
	if err := r.client.Do(ctx, http.MethodPost, r.path, item, &out); err != nil {
		var zero E
		return zero, err
	}
	return out, nil
}

// Update sends a partial update and returns the merged record.
func (r *Resource[E]) Update(ctx context.Context, id string, patch any) (E, error) {
	var out E
	if err := r.client.Do(ctx, http.MethodPut, r.path+"/"+id, patch, &out); err != nil {
		var zero E
		return zero, err
	}
	return out, nil
}

// Delete removes a record.
func (r *Resource[E]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil)
}
