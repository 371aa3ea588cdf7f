package api

import (
	"github.com/promptlab/promptlab/internal/infrastructure"
)

// Runtime narrows Infrastructure to the API module, scoping its logger so
// every record carries the module attribute.
type Runtime struct {
	*infrastructure.Infrastructure
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Store:     infra.Store,
		},
	}
}
