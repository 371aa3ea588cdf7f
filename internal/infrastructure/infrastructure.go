// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, the shared store) that
// domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/promptlab/promptlab/internal/store"
	"github.com/promptlab/promptlab/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and the in-memory store shared across domains.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Store     *store.Store
}

// New creates an Infrastructure with an empty store. The store holds no
// external resources, so there is nothing to start or stop beyond the
// lifecycle hooks registered by the HTTP layer.
func New() *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Store:     store.New(),
	}
}
