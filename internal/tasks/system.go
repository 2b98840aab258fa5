package tasks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// System defines the interface for task management operations.
type System interface {
	// List returns every task in store order.
	List(ctx context.Context) ([]Task, error)

	// Find returns the task with the given identifier.
	Find(ctx context.Context, id primitive.ObjectID) (Task, error)

	// Create stores fields as a new task with the default status and returns
	// the stored document including its generated identifier.
	Create(ctx context.Context, fields Task) (Task, error)

	// UpdateStatus sets the status of a task and returns the updated document.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, cmd UpdateStatusCommand) (Task, error)

	// Update merges fields into an existing task.
	Update(ctx context.Context, id primitive.ObjectID, fields Task) error

	// Delete removes a task.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
