// Package api assembles the HTTP surface of the service: the task and user
// routes, the system endpoints and the middleware stack wrapped around them.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/task-manager/internal/config"
	"github.com/JaimeStill/task-manager/internal/infrastructure"
	"github.com/JaimeStill/task-manager/pkg/middleware"
	"github.com/JaimeStill/task-manager/pkg/openapi"
)

// NewHandler builds the complete service handler from the configuration and
// infrastructure. Route conflicts are reported as errors.
func NewHandler(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	runtime := NewRuntime(infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, spec, cfg.API.BasePath, runtime, domain); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	registerSystemRoutes(mux, runtime, specBytes)

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.CORS(&cfg.API.CORS))
	mw.Use(middleware.Metrics(runtime.Metrics))
	mw.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return mw.Apply(mux), nil
}
