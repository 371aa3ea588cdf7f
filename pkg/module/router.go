package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment,
// then to a native ServeMux, then to the root module when one is
// mounted. Native routes keep priority over the root module so runtime
// endpoints stay reachable regardless of what the root module claims.
type Router struct {
	modules map[string]*Module
	root    *Module
	native  *http.ServeMux
}

// NewRouter creates a Router with no mounted modules and an empty
// native mux.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix. A root module replaces any
// previously mounted root module.
func (r *Router) Mount(m *Module) {
	if m.Root() {
		r.root = m
		return
	}
	r.modules[m.prefix] = m
}

// ServeHTTP dispatches to the matching prefix module, the native mux,
// or the root module, in that order.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)

	if m, ok := r.modules[firstSegment(path)]; ok {
		m.Serve(w, req)
		return
	}

	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	if r.root != nil {
		r.root.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
