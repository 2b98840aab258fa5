// Package memstore provides an in-process docstore.Store. Collections keep
// documents in insertion order. Fail injects an error into every subsequent
// operation so callers can exercise store-failure paths.
package memstore

import (
	"context"
	"maps"
	"reflect"
	"sync"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a map-backed docstore.Store safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]docstore.Document
	err         error
	mutations   int
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		collections: make(map[string][]docstore.Document),
	}
}

// Fail makes every subsequent operation, including Ping, return err.
// Passing nil clears the injected error.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Mutations reports how many insert, update and delete calls changed data.
func (s *Store) Mutations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mutations
}

func (s *Store) Collection(name string) docstore.Collection {
	return &collection{store: s, name: name}
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

type collection struct {
	store *Store
	name  string
}

func (c *collection) Find(ctx context.Context, filter docstore.Filter) ([]docstore.Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if c.store.err != nil {
		return nil, c.store.err
	}

	docs := make([]docstore.Document, 0)
	for _, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			docs = append(docs, maps.Clone(doc))
		}
	}
	return docs, nil
}

func (c *collection) FindOne(ctx context.Context, filter docstore.Filter) (docstore.Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if c.store.err != nil {
		return nil, c.store.err
	}

	if i := c.index(filter); i >= 0 {
		return maps.Clone(c.store.collections[c.name][i]), nil
	}
	return nil, docstore.ErrNoDocuments
}

func (c *collection) InsertOne(ctx context.Context, doc docstore.Document) (primitive.ObjectID, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.store.err != nil {
		return primitive.NilObjectID, c.store.err
	}

	stored := maps.Clone(doc)
	if stored == nil {
		stored = docstore.Document{}
	}

	id, ok := stored.ID()
	if !ok {
		id = primitive.NewObjectID()
		stored[docstore.IDField] = id
	} else if c.index(docstore.ByID(id)) >= 0 {
		return primitive.NilObjectID, docstore.ErrDuplicateKey
	}

	c.store.collections[c.name] = append(c.store.collections[c.name], stored)
	c.store.mutations++
	return id, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.UpdateResult, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.store.err != nil {
		return docstore.UpdateResult{}, c.store.err
	}

	i := c.index(filter)
	if i < 0 {
		return docstore.UpdateResult{}, nil
	}

	modified := c.apply(i, set)
	return docstore.UpdateResult{Matched: 1, Modified: modified}, nil
}

func (c *collection) FindOneAndUpdate(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.Document, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.store.err != nil {
		return nil, c.store.err
	}

	i := c.index(filter)
	if i < 0 {
		return nil, docstore.ErrNoDocuments
	}

	c.apply(i, set)
	return maps.Clone(c.store.collections[c.name][i]), nil
}

func (c *collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.store.err != nil {
		return 0, c.store.err
	}

	i := c.index(filter)
	if i < 0 {
		return 0, nil
	}

	docs := c.store.collections[c.name]
	c.store.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
	c.store.mutations++
	return 1, nil
}

// index returns the position of the first document matching filter, or -1.
// Callers must hold the store lock.
func (c *collection) index(filter docstore.Filter) int {
	for i, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			return i
		}
	}
	return -1
}

// apply sets fields on the document at position i and reports 1 when any
// value changed. Callers must hold the write lock.
func (c *collection) apply(i int, set docstore.Document) int64 {
	doc := c.store.collections[c.name][i]

	var modified int64
	for k, v := range set {
		if k == docstore.IDField {
			continue
		}
		if cur, ok := doc[k]; !ok || !reflect.DeepEqual(cur, v) {
			doc[k] = v
			modified = 1
		}
	}

	if modified > 0 {
		c.store.mutations++
	}
	return modified
}

func matches(doc docstore.Document, filter docstore.Filter) bool {
	for k, v := range filter {
		cur, ok := doc[k]
		if !ok || !reflect.DeepEqual(cur, v) {
			return false
		}
	}
	return true
}
