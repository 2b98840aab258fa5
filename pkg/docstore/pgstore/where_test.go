package pgstore_test

import (
	"testing"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"github.com/JaimeStill/task-manager/pkg/docstore/pgstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWhere(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		filter    docstore.Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			filter:    docstore.Filter{},
			wantWhere: "collection = $1",
			wantArgs:  []any{"tasks"},
		},
		{
			name:      "by id",
			filter:    docstore.ByID(id),
			wantWhere: "collection = $1 AND id = $2",
			wantArgs:  []any{"tasks", id.Hex()},
		},
		{
			name:      "by field",
			filter:    docstore.Filter{"email": "ada@example.com"},
			wantWhere: "collection = $1 AND data @> $2::jsonb",
			wantArgs:  []any{"tasks", `{"email":"ada@example.com"}`},
		},
		{
			name:      "id and field",
			filter:    docstore.Filter{"_id": id, "status": "done"},
			wantWhere: "collection = $1 AND id = $2 AND data @> $3::jsonb",
			wantArgs:  []any{"tasks", id.Hex(), `{"status":"done"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := pgstore.Where("tasks", tt.filter)
			if err != nil {
				t.Fatalf("Where() error = %v", err)
			}
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestWhere_RejectsNonObjectID(t *testing.T) {
	_, _, err := pgstore.Where("tasks", docstore.Filter{"_id": "65a1b2c3d4e5f60718293a4b"})
	if err == nil {
		t.Error("Where() should reject a string identifier")
	}
}
