// Package tasks manages task records: free-form documents carrying a status
// that starts at "to-do" and may be changed to any string afterwards.
package tasks

import "github.com/JaimeStill/task-manager/pkg/docstore"

// Collection is the document store collection holding tasks.
const Collection = "tasks"

// StatusField names the task field updated by UpdateStatus.
const StatusField = "status"

// DefaultStatus is assigned to every task on creation, whatever the client sent.
const DefaultStatus = "to-do"

// Task is a stored task document. Fields other than _id and status are
// whatever the client supplied.
type Task = docstore.Document

// UpdateStatusCommand replaces the status of a single task.
type UpdateStatusCommand struct {
	Status string `json:"status"`
}

// CreateResponse is the body returned by a successful create.
type CreateResponse struct {
	InsertedTask Task `json:"insertedTask"`
}

// UpdateStatusResponse carries the task as it is after a status update.
type UpdateStatusResponse struct {
	UpdatedTask Task `json:"updatedTask"`
}

// UpdateResponse acknowledges a field update.
type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}
