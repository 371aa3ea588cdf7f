package api

import (
	"net/http"

	"github.com/promptlab/promptlab/pkg/routes"
)

func buildMux(domain *Domain) *http.ServeMux {
	return routes.Mux(
		domain.Prompts.Handler().Routes(),
		domain.Collections.Handler().Routes(),
	)
}
