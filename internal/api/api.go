// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"

	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/internal/infrastructure"
	"github.com/promptlab/promptlab/pkg/middleware"
	"github.com/promptlab/promptlab/pkg/module"
	"github.com/promptlab/promptlab/pkg/openapi"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(infra)
	domain := NewDomain(runtime)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	mux := buildMux(domain)
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.BodyLimit(cfg.API.MaxBodySizeBytes()))

	return m, nil
}
