package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/promptlab/promptlab/pkg/middleware"
)

// Module is an HTTP handler that strips its mount prefix and delegates to
// an inner router with its own middleware stack. A module mounted at "/"
// owns the root namespace and receives paths unchanged.
type Module struct {
	prefix     string
	router     http.Handler
	middleware *middleware.Stack
}

// New creates a Module mounted at the given prefix: either "/" for a
// root module or a single-level sub-path (e.g. "/api"). Panics on any
// other prefix shape.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.NewStack(),
	}
}

// Handler returns the inner router wrapped with the module's middleware stack.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Root reports whether the module is mounted at "/".
func (m *Module) Root() bool {
	return m.prefix == "/"
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw middleware.Middleware) {
	m.middleware.Use(mw)
}

// Serve strips the mount prefix from the request path and dispatches to
// the inner router. Root modules dispatch without rewriting.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	if m.Root() {
		m.Handler().ServeHTTP(w, req)
		return
	}
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	stripped := strings.TrimPrefix(req.URL.Path, prefix)
	if stripped == "" {
		stripped = "/"
	}

	request := new(http.Request)
	*request = *req
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = stripped
	request.URL.RawPath = ""
	return request
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	if strings.Count(prefix, "/") != 1 || len(prefix) < 2 {
		return fmt.Errorf("module prefix must be / or a single-level sub-path: %q", prefix)
	}
	return nil
}
