package api

import (
	"github.com/JaimeStill/task-manager/internal/infrastructure"
)

// Runtime scopes the shared infrastructure to the API module.
type Runtime struct {
	*infrastructure.Infrastructure
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")
	return &Runtime{Infrastructure: &scoped}
}
