// Package users stores user records and looks them up by email address.
package users

import (
	"github.com/JaimeStill/task-manager/pkg/docstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the document store collection holding users.
const Collection = "users"

// EmailField is the lookup key of a user.
const EmailField = "email"

// User is a stored user document.
type User = docstore.Document

// CreateResponse is the body returned by a successful create.
type CreateResponse struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}
