package users

import "github.com/JaimeStill/task-manager/pkg/openapi"

type spec struct {
	List        *openapi.Operation
	FindByEmail *openapi.Operation
	Create      *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List users",
		Description: "Returns every user in the store",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("All users", "UserList"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	FindByEmail: &openapi.Operation{
		Summary:     "Get user by email",
		Description: "Returns the first user whose email matches exactly",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("email", "email", "User email address"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("User", "User"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create user",
		Description: "Stores a new user",
		RequestBody: openapi.RequestBodyJSON("UserInput", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Identifier of the new user", "UserCreated"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"User": {
			Type:                 "object",
			AdditionalProperties: true,
			Properties: map[string]*openapi.Schema{
				"_id":   {Type: "string", Format: "objectid"},
				"email": {Type: "string", Format: "email"},
			},
		},
		"UserList": {
			Type:  "array",
			Items: openapi.SchemaRef("User"),
		},
		"UserInput": {
			Type:                 "object",
			AdditionalProperties: true,
			Properties: map[string]*openapi.Schema{
				"email": {Type: "string", Format: "email", Example: "ada@example.com"},
				"name":  {Type: "string", Example: "Ada"},
			},
		},
		"UserCreated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"insertedId": {Type: "string", Format: "objectid"},
			},
		},
	}
}
