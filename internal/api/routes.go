package api

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/task-manager/internal/tasks"
	"github.com/JaimeStill/task-manager/internal/users"
	"github.com/JaimeStill/task-manager/pkg/handlers"
	"github.com/JaimeStill/task-manager/pkg/metrics"
	"github.com/JaimeStill/task-manager/pkg/openapi"
	"github.com/JaimeStill/task-manager/pkg/routes"
	"github.com/JaimeStill/task-manager/web/scalar"
)

// HealthMessage is the body of the root health check.
const HealthMessage = "task management is running"

const readyTimeout = 2 * time.Second

func registerRoutes(mux *http.ServeMux, spec *openapi.Spec, basePath string, runtime *Runtime, domain *Domain) error {
	tasksHandler := tasks.NewHandler(domain.Tasks, runtime.Logger)
	usersHandler := users.NewHandler(domain.Users, runtime.Logger)

	spec.Components.AddSchemas(tasks.Spec.Schemas())
	spec.Components.AddSchemas(users.Spec.Schemas())

	return routes.Register(
		mux,
		basePath,
		spec,
		tasksHandler.Routes(),
		usersHandler.Routes(),
	)
}

func registerSystemRoutes(mux *http.ServeMux, runtime *Runtime, specBytes []byte) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondText(w, http.StatusOK, HealthMessage)
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := runtime.Database.Store().Ping(ctx); err != nil {
			runtime.Logger.Warn("readiness ping failed", "error", err)
			handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
			return
		}
		handlers.RespondText(w, http.StatusOK, "READY")
	})

	mux.Handle("GET /metrics", metrics.Handler(runtime.Registry))
	mux.HandleFunc("GET "+scalar.SpecURL, openapi.ServeSpec(specBytes))
	mux.Handle("GET /scalar", scalar.Handler())
}
