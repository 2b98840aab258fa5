package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// System defines the interface for user operations.
type System interface {
	// List returns every user in store order.
	List(ctx context.Context) ([]User, error)

	// FindByEmail returns the first user whose email field equals email.
	FindByEmail(ctx context.Context, email string) (User, error)

	// Create stores fields as a new user and returns the generated identifier.
	Create(ctx context.Context, fields User) (primitive.ObjectID, error)
}
