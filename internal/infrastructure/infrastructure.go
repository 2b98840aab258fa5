// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, document store, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/task-manager/internal/config"
	"github.com/JaimeStill/task-manager/pkg/database"
	"github.com/JaimeStill/task-manager/pkg/lifecycle"
	"github.com/JaimeStill/task-manager/pkg/logging"
	"github.com/JaimeStill/task-manager/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsNamespace prefixes every exported metric name.
const MetricsNamespace = "task_manager"

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Registry  *prometheus.Registry
	Metrics   *metrics.HTTP
}

// New creates an Infrastructure from the application configuration.
// It opens the document store but sends no request to it; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging, os.Stdout)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return FromDatabase(db, logger), nil
}

// FromDatabase assembles an Infrastructure around an existing database system.
func FromDatabase(db database.System, logger *slog.Logger) *Infrastructure {
	reg := metrics.NewRegistry()

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		Registry:  reg,
		Metrics:   metrics.NewHTTP(reg, MetricsNamespace),
	}
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
