// Package database owns the document store connection: it opens the backend
// selected by configuration, verifies it on startup and closes it on shutdown.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"github.com/JaimeStill/task-manager/pkg/docstore/mongostore"
	"github.com/JaimeStill/task-manager/pkg/docstore/pgstore"
	"github.com/JaimeStill/task-manager/pkg/lifecycle"
)

// System provides the shared document store and manages its lifecycle.
type System interface {
	// Store returns the connected document store.
	Store() docstore.Store

	// Start pings the store and registers its close as a cleanup hook on lc,
	// so it runs after in-flight requests have drained.
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	store   docstore.Store
	logger  *slog.Logger
	timeout time.Duration
}

// New opens the configured backend. No request is sent to the store until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	store, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return FromStore(store, logger, cfg.ConnTimeoutDuration()), nil
}

// FromStore wraps an already opened store. A non-positive timeout falls back to ten seconds.
func FromStore(store docstore.Store, logger *slog.Logger, timeout time.Duration) System {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &database{
		store:   store,
		logger:  logger.With("system", "database"),
		timeout: timeout,
	}
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg *Config) (docstore.Store, error) {
	switch cfg.Driver {
	case DriverMongo:
		return mongostore.Connect(ctx, cfg.ConnectionString(), cfg.Name)
	case DriverPostgres:
		return pgstore.Open(ctx, cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}
}

func (d *database) Store() docstore.Store {
	return d.store
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.timeout)
	defer cancel()

	if err := d.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	d.logger.Info("database connection established")

	lc.OnCleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.store.Close(ctx); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
