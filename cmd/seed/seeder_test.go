package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/task-manager/internal/tasks"
	"github.com/JaimeStill/task-manager/internal/users"
	"github.com/JaimeStill/task-manager/pkg/docstore"
	"github.com/JaimeStill/task-manager/pkg/docstore/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSeeders(t *testing.T) {
	list := listSeeders()
	require.Len(t, list, 2)
	assert.Equal(t, "tasks", list[0].Name())
	assert.Equal(t, "users", list[1].Name())
}

func TestRunSeeder_Unknown(t *testing.T) {
	_, err := runSeeder(t.Context(), memstore.New(), "profiles")
	assert.Error(t, err)
}

func TestTaskSeeder_Idempotent(t *testing.T) {
	store := memstore.New()
	ctx := t.Context()

	n, err := runSeeder(ctx, store, "tasks")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = runSeeder(ctx, store, "tasks")
	require.NoError(t, err)
	assert.Zero(t, n)

	docs, err := store.Collection(tasks.Collection).Find(ctx, docstore.Filter{})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	review, err := store.Collection(tasks.Collection).FindOne(ctx, docstore.Filter{"title": "Review open pull requests"})
	require.NoError(t, err)
	assert.Equal(t, "in-progress", review[tasks.StatusField])

	board, err := store.Collection(tasks.Collection).FindOne(ctx, docstore.Filter{"title": "Set up project board"})
	require.NoError(t, err)
	assert.Equal(t, tasks.DefaultStatus, board[tasks.StatusField])
}

func TestUserSeeder_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"email":"linus@example.com","name":"Linus"}]`), 0o600))

	store := memstore.New()
	seeder := &UserSeeder{}
	seeder.SetFile(path)

	n, err := seeder.Seed(t.Context(), store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	doc, err := store.Collection(users.Collection).FindOne(t.Context(), docstore.Filter{users.EmailField: "linus@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Linus", doc["name"])
}

func TestSeedCollection_MissingKey(t *testing.T) {
	_, err := seedCollection(t.Context(), memstore.New(), users.Collection, users.EmailField, []docstore.Document{{"name": "anonymous"}})
	assert.Error(t, err)
}

func TestLoadDocuments_Malformed(t *testing.T) {
	_, err := loadDocuments("", []byte(`{"email":"not-an-array"}`))
	assert.Error(t, err)
}

func TestLoadDocuments_NormalizesNumbers(t *testing.T) {
	docs, err := loadDocuments("", []byte(`[{"title":"a","points":3,"weight":0.5,"meta":{"order":[1,2]}}]`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, int64(3), docs[0]["points"])
	assert.Equal(t, 0.5, docs[0]["weight"])
	assert.Equal(t, []any{int64(1), int64(2)}, docs[0]["meta"].(map[string]any)["order"])
}

func TestLoadDocuments_OutOfRange(t *testing.T) {
	_, err := loadDocuments("", []byte(`[{"title":"a","points":1e400}]`))
	assert.Error(t, err)
}
