package api

import (
	"github.com/JaimeStill/task-manager/internal/tasks"
	"github.com/JaimeStill/task-manager/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Tasks tasks.System
	Users users.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	store := runtime.Database.Store()

	return &Domain{
		Tasks: tasks.New(store, runtime.Logger),
		Users: users.New(store, runtime.Logger),
	}
}
