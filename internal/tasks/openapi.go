package tasks

import "github.com/JaimeStill/task-manager/pkg/openapi"

type spec struct {
	List         *openapi.Operation
	Find         *openapi.Operation
	Create       *openapi.Operation
	UpdateStatus *openapi.Operation
	Update       *openapi.Operation
	Delete       *openapi.Operation
}

var idParam = openapi.PathParam("id", "objectid", "Task identifier (24 hex characters)")

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List tasks",
		Description: "Returns every task in the store",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("All tasks", "TaskList"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get task",
		Description: "Returns a single task by identifier",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Task", "Task"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create task",
		Description: "Stores a new task. Any client supplied status is replaced with \"to-do\"",
		RequestBody: openapi.RequestBodyJSON("TaskInput", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created task", "TaskCreated"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Update task status",
		Description: "Sets the status of a task and returns the updated task",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("UpdateStatusCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated task", "TaskStatusUpdated"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update task fields",
		Description: "Merges the supplied fields into an existing task",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("TaskInput", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Update acknowledged", "TaskUpdated"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete task",
		Description: "Removes a task",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Delete acknowledged", "TaskDeleted"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Task": {
			Type:                 "object",
			AdditionalProperties: true,
			Properties: map[string]*openapi.Schema{
				"_id":    {Type: "string", Format: "objectid"},
				"status": {Type: "string", Example: DefaultStatus},
			},
		},
		"TaskList": {
			Type:  "array",
			Items: openapi.SchemaRef("Task"),
		},
		"TaskInput": {
			Type:                 "object",
			AdditionalProperties: true,
			Example:              map[string]any{"title": "write release notes"},
		},
		"UpdateStatusCommand": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Example: "done"},
			},
		},
		"TaskCreated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"insertedTask": openapi.SchemaRef("Task"),
			},
		},
		"TaskStatusUpdated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"updatedTask": openapi.SchemaRef("Task"),
			},
		},
		"TaskUpdated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
				"message": {Type: "string"},
			},
		},
		"TaskDeleted": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
			},
		},
	}
}
