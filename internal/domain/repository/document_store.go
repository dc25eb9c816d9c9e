package repository

import (
	"context"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

// Document is one record of a snapshot or a one-shot read.
type Document interface {
	ID() string
	DataTo(v interface{}) error
}

// Unsubscribe releases a live subscription. It is safe to call more than
// once and returns only after the listener has stopped delivering.
type Unsubscribe func()

// DocumentStore is the boundary to the remote document database.
// Collection arguments are slash separated paths, so nested collections
// are addressed as "products/{id}/reviews".
type DocumentStore interface {
	// Listen delivers the full result set of collection on every change.
	// onError is called at most once and ends the subscription.
	Listen(ctx context.Context, collection string, onSnapshot func([]Document), onError func(error)) Unsubscribe
	Get(ctx context.Context, collection, id string) (Document, error)
	Set(ctx context.Context, collection, id string, fields map[string]interface{}, merge bool) error
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes one record. Missing records are not an error and
	// nested collections are left untouched.
	Delete(ctx context.Context, collection, id string) error
	All(ctx context.Context, collection string) ([]Document, error)
	Query(ctx context.Context, collection, orderBy string, dir Direction, limit int) ([]Document, error)
	Ping(ctx context.Context) error
}

// Decode converts documents into records of type T, setting the key with
// setID. Every document yields a record, so the result has len(docs)
// entries; decode problems are reported through onError and the fields
// that could not be read stay at their zero value.
func Decode[T any](docs []Document, setID func(*T, string), onError func(id string, err error)) []*T {
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		item := new(T)
		if err := doc.DataTo(item); err != nil && onError != nil {
			onError(doc.ID(), err)
		}
		setID(item, doc.ID())
		out = append(out, item)
	}
	return out
}
