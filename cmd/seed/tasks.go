package main

import (
	"context"
	_ "embed"

	"github.com/JaimeStill/task-manager/internal/tasks"
	"github.com/JaimeStill/task-manager/pkg/docstore"
)

//go:embed seeds/tasks.json
var defaultTasks []byte

func init() {
	registerSeeder(&TaskSeeder{})
}

// TaskSeeder inserts demo tasks keyed by title.
type TaskSeeder struct {
	file string
}

func (s *TaskSeeder) Name() string        { return "tasks" }
func (s *TaskSeeder) Description() string { return "Seeds demo tasks, skipping titles already present" }

// SetFile configures an external seed file path, overriding the embedded default.
func (s *TaskSeeder) SetFile(path string) {
	s.file = path
}

func (s *TaskSeeder) Seed(ctx context.Context, store docstore.Store) (int, error) {
	docs, err := loadDocuments(s.file, defaultTasks)
	if err != nil {
		return 0, err
	}

	for _, doc := range docs {
		if _, ok := doc[tasks.StatusField]; !ok {
			doc[tasks.StatusField] = tasks.DefaultStatus
		}
	}
	return seedCollection(ctx, store, tasks.Collection, "title", docs)
}
