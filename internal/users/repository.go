package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type repo struct {
	users  docstore.Collection
	logger *slog.Logger
}

func New(store docstore.Store, logger *slog.Logger) System {
	return &repo{
		users:  store.Collection(Collection),
		logger: logger.With("system", "users"),
	}
}

func (r *repo) List(ctx context.Context) ([]User, error) {
	users, err := r.users.Find(ctx, docstore.Filter{})
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return users, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (User, error) {
	user, err := r.users.FindOne(ctx, docstore.Filter{EmailField: email})
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *repo) Create(ctx context.Context, fields User) (primitive.ObjectID, error) {
	id, err := r.users.InsertOne(ctx, fields.Without(docstore.IDField))
	if err != nil {
		return primitive.NilObjectID, mapError(err)
	}

	r.logger.Info("user created", "id", id.Hex())
	return id, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, docstore.ErrDuplicateKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("user store: %w", err)
	}
}
