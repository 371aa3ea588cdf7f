package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler. An empty pattern
// addresses the group prefix itself.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group organizes routes under a common prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Register adds all routes from the given groups to the mux using
// method-qualified patterns.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		for _, route := range group.Routes {
			mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
		}
	}
}

// Mux builds a ServeMux with all routes from the given groups registered.
func Mux(groups ...Group) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, groups...)
	return mux
}
