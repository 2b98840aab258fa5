package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type repo struct {
	tasks  docstore.Collection
	logger *slog.Logger
}

func New(store docstore.Store, logger *slog.Logger) System {
	return &repo{
		tasks:  store.Collection(Collection),
		logger: logger.With("system", "tasks"),
	}
}

func (r *repo) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.tasks.Find(ctx, docstore.Filter{})
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}

func (r *repo) Find(ctx context.Context, id primitive.ObjectID) (Task, error) {
	task, err := r.tasks.FindOne(ctx, docstore.ByID(id))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

func (r *repo) Create(ctx context.Context, fields Task) (Task, error) {
	task := fields.Without(docstore.IDField)
	task[StatusField] = DefaultStatus

	id, err := r.tasks.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	task[docstore.IDField] = id

	r.logger.Info("task created", "id", id.Hex())
	return task, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id primitive.ObjectID, cmd UpdateStatusCommand) (Task, error) {
	task, err := r.tasks.FindOneAndUpdate(ctx, docstore.ByID(id), docstore.Document{StatusField: cmd.Status})
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("task status updated", "id", id.Hex(), "status", cmd.Status)
	return task, nil
}

func (r *repo) Update(ctx context.Context, id primitive.ObjectID, fields Task) error {
	set := fields.Without(docstore.IDField)
	if len(set) == 0 {
		return ErrInvalidBody
	}

	result, err := r.tasks.UpdateOne(ctx, docstore.ByID(id), set)
	if err != nil {
		return mapError(err)
	}
	if result.Matched == 0 {
		return ErrNotFound
	}

	r.logger.Info("task updated", "id", id.Hex(), "fields", len(set))
	return nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := r.tasks.DeleteOne(ctx, docstore.ByID(id))
	if err != nil {
		return mapError(err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	r.logger.Info("task deleted", "id", id.Hex())
	return nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, docstore.ErrInvalidID):
		return ErrInvalidID
	default:
		return fmt.Errorf("task store: %w", err)
	}
}
