// Package main provides the seed command for populating the document store
// with initial or demo data. Seeders can be run individually or together.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/JaimeStill/task-manager/pkg/decode"
	"github.com/JaimeStill/task-manager/pkg/docstore"
)

// Seeder populates one collection of the document store.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed inserts the seed documents that are not already present and
	// reports how many were inserted.
	Seed(ctx context.Context, store docstore.Store) (int, error)
}

var seeders = map[string]Seeder{}

func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		if a.Name() < b.Name() {
			return -1
		}
		if a.Name() > b.Name() {
			return 1
		}
		return 0
	})
	return result
}

func runSeeder(ctx context.Context, store docstore.Store, name string) (int, error) {
	seeder, ok := getSeeder(name)
	if !ok {
		return 0, fmt.Errorf("seeder not found: %s", name)
	}

	n, err := seeder.Seed(ctx, store)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", name, err)
	}
	return n, nil
}

// seedCollection inserts each document of docs unless a document with the
// same value of key already exists in collection.
func seedCollection(ctx context.Context, store docstore.Store, collection, key string, docs []docstore.Document) (int, error) {
	coll := store.Collection(collection)

	inserted := 0
	for _, doc := range docs {
		value, ok := doc[key]
		if !ok {
			return inserted, fmt.Errorf("document missing %q", key)
		}

		_, err := coll.FindOne(ctx, docstore.Filter{key: value})
		if err == nil {
			continue
		}
		if !errors.Is(err, docstore.ErrNoDocuments) {
			return inserted, err
		}

		if _, err := coll.InsertOne(ctx, doc.Without(docstore.IDField)); err != nil {
			return inserted, fmt.Errorf("insert %v: %w", value, err)
		}
		inserted++
	}
	return inserted, nil
}

// loadDocuments reads a JSON array of objects from path, or from fallback when path is empty.
func loadDocuments(path string, fallback []byte) ([]docstore.Document, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var docs []docstore.Document
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	for _, doc := range docs {
		if _, err := decode.Normalize(map[string]any(doc)); err != nil {
			return nil, fmt.Errorf("parse seed data: %w", err)
		}
	}
	return docs, nil
}
