package main

import (
	"context"
	_ "embed"

	"github.com/JaimeStill/task-manager/internal/users"
	"github.com/JaimeStill/task-manager/pkg/docstore"
)

//go:embed seeds/users.json
var defaultUsers []byte

func init() {
	registerSeeder(&UserSeeder{})
}

// UserSeeder inserts demo users keyed by email.
type UserSeeder struct {
	file string
}

func (s *UserSeeder) Name() string        { return "users" }
func (s *UserSeeder) Description() string { return "Seeds demo users, skipping emails already present" }

func (s *UserSeeder) SetFile(path string) {
	s.file = path
}

func (s *UserSeeder) Seed(ctx context.Context, store docstore.Store) (int, error) {
	docs, err := loadDocuments(s.file, defaultUsers)
	if err != nil {
		return 0, err
	}
	return seedCollection(ctx, store, users.Collection, users.EmailField, docs)
}
