package hosby

import (
	"context"
	"net/http"
)

// Collection provides typed CRUD access to one Hosby table. All methods
// are thin parameter forwarding over Client.Request; the protocol logic
// lives entirely in the client.
type Collection[T any] struct {
	client *Client
	name   string
}

// NewCollection binds a document type to a table name.
func NewCollection[T any](c *Client, name string) *Collection[T] {
	return &Collection[T]{client: c, name: name}
}

// Find returns all documents matching the filters.
func (c *Collection[T]) Find(ctx context.Context, filters []Filter, opts *QueryOptions) ([]T, error) {
	var out []T
	if err := c.get(ctx, c.name+"/find", &Params{Filters: filters, Options: opts}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// FindOne returns the first document matching the filters.
func (c *Collection[T]) FindOne(ctx context.Context, filters []Filter, opts *QueryOptions) (*T, error) {
	var out T
	if err := c.get(ctx, c.name+"/findOne", &Params{Filters: filters, Options: opts}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// FindByID returns the document with the given id.
func (c *Collection[T]) FindByID(ctx context.Context, id string, opts *QueryOptions) (*T, error) {
	var out T
	if err := c.get(ctx, c.name+"/findById/"+id, &Params{Options: opts}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Count returns the number of documents matching the filters.
func (c *Collection[T]) Count(ctx context.Context, filters []Filter) (int64, error) {
	var out int64
	if err := c.get(ctx, c.name+"/count", &Params{Filters: filters}, &out); err != nil {
		return 0, err
	}

	return out, nil
}

// InsertOne creates a document and returns the stored version.
func (c *Collection[T]) InsertOne(ctx context.Context, doc T) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodPost, c.name+"/insertOne", nil, doc, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// InsertMany creates several documents and returns the stored versions.
func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) ([]T, error) {
	var out []T
	if err := c.call(ctx, http.MethodPost, c.name+"/insertMany", nil, docs, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateByID applies a partial update to the document with the given id.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, update any) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodPut, c.name+"/updateById/"+id, nil, update, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateOne applies a partial update to the first document matching the
// filters.
func (c *Collection[T]) UpdateOne(ctx context.Context, filters []Filter, update any) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodPut, c.name+"/updateOne", &Params{Filters: filters}, update, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpsertOne updates the first document matching the filters, creating it
// when none matches.
func (c *Collection[T]) UpsertOne(ctx context.Context, filters []Filter, doc any) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodPut, c.name+"/upsertOne", &Params{Filters: filters}, doc, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteByID removes the document with the given id and returns it.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodDelete, c.name+"/deleteById/"+id, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteOne removes the first document matching the filters and returns
// it.
func (c *Collection[T]) DeleteOne(ctx context.Context, filters []Filter) (*T, error) {
	var out T
	if err := c.call(ctx, http.MethodDelete, c.name+"/deleteOne", &Params{Filters: filters}, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteMany removes all documents matching the filters and returns the
// number removed.
func (c *Collection[T]) DeleteMany(ctx context.Context, filters []Filter) (int64, error) {
	var out int64
	if err := c.call(ctx, http.MethodDelete, c.name+"/deleteMany", &Params{Filters: filters}, nil, &out); err != nil {
		return 0, err
	}

	return out, nil
}

func (c *Collection[T]) get(ctx context.Context, path string, params *Params, out any) error {
	return c.call(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Collection[T]) call(ctx context.Context, method, path string, params *Params, body, out any) error {
	resp, err := c.client.Request(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	return resp.Decode(out)
}
