// Package docstore defines the document database contract consumed by the domain
// systems. Documents are schema-less field mappings addressed by an ObjectID or
// by equality filters on top-level fields. Backends live in the mongostore,
// pgstore and memstore subpackages.
package docstore

import (
	"context"
	"errors"
	"maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the field holding the store-assigned identifier of every document.
const IDField = "_id"

var (
	// ErrNoDocuments indicates a single-document operation matched nothing.
	ErrNoDocuments = errors.New("no documents in result")

	// ErrDuplicateKey indicates an insert violated a unique index configured in the store.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidID indicates an identifier string is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid object id")
)

// Document is a schema-less record.
type Document map[string]any

// Filter selects documents by equality on top-level fields.
// An empty filter matches every document in a collection.
type Filter map[string]any

// UpdateResult reports the outcome of an UpdateOne call.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Collection is a named set of documents within a Store.
type Collection interface {
	// Find returns every document matching filter. The result is never nil.
	Find(ctx context.Context, filter Filter) ([]Document, error)

	// FindOne returns the first document matching filter.
	// Returns ErrNoDocuments if nothing matches.
	FindOne(ctx context.Context, filter Filter) (Document, error)

	// InsertOne stores doc and returns its identifier, generating one
	// when doc carries no IDField.
	InsertOne(ctx context.Context, doc Document) (primitive.ObjectID, error)

	// UpdateOne sets the fields of set on the first document matching filter.
	UpdateOne(ctx context.Context, filter Filter, set Document) (UpdateResult, error)

	// FindOneAndUpdate sets the fields of set on the first document matching
	// filter and returns the document as it is after the update.
	// Returns ErrNoDocuments if nothing matches.
	FindOneAndUpdate(ctx context.Context, filter Filter, set Document) (Document, error)

	// DeleteOne removes the first document matching filter and reports
	// how many documents were removed.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
}

// Store is a connected document database.
type Store interface {
	Collection(name string) Collection

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// ParseID validates and converts a hex identifier.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// ByID returns a filter matching the document with the given identifier.
func ByID(id primitive.ObjectID) Filter {
	return Filter{IDField: id}
}

// ID returns the document identifier when present.
func (d Document) ID() (primitive.ObjectID, bool) {
	id, ok := d[IDField].(primitive.ObjectID)
	return id, ok
}

// Without returns a shallow copy of d with the named fields removed.
func (d Document) Without(fields ...string) Document {
	out := maps.Clone(d)
	if out == nil {
		out = Document{}
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}
