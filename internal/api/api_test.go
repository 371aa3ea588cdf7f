package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptlab/promptlab/internal/api"
	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/internal/infrastructure"
	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/prompts"
	"github.com/promptlab/promptlab/pkg/middleware"
	"github.com/promptlab/promptlab/pkg/module"
	"github.com/promptlab/promptlab/pkg/openapi"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			ReadTimeout:  "30s",
			WriteTimeout: "1m",
		},
		API: config.APIConfig{
			BasePath:    "/",
			MaxBodySize: "1MB",
			CORS: middleware.CORSConfig{
				Enabled: false,
			},
			OpenAPI: openapi.Config{
				Title:       "PromptLab API",
				Description: "Prompt and collection management service.",
			},
		},
		ShutdownTimeout: "30s",
		Version:         "1.0.0",
	}
}

// setup builds the API module and mounts it on a router the way the server
// binary does, so tests exercise the full dispatch path.
func setup(t *testing.T) http.Handler {
	t.Helper()

	infra := infrastructure.New()
	m, err := api.NewModule(validConfig(), infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func request(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestNewModule(t *testing.T) {
	infra := infrastructure.New()

	m, err := api.NewModule(validConfig(), infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	if m.Prefix() != "/" {
		t.Errorf("prefix: got %s, want /", m.Prefix())
	}
	if !m.Root() {
		t.Error("module should mount at the root")
	}
}

func TestNewDomain(t *testing.T) {
	runtime := api.NewRuntime(infrastructure.New())
	domain := api.NewDomain(runtime)

	if domain.Prompts == nil {
		t.Error("prompts system is nil")
	}
	if domain.Collections == nil {
		t.Error("collections system is nil")
	}
}

func TestPromptLifecycle(t *testing.T) {
	handler := setup(t)

	rec := request(t, handler, "POST", "/collections", map[string]any{"name": "Templates"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create collection status = %d, want 201", rec.Code)
	}
	collection := decode[models.Collection](t, rec)

	rec = request(t, handler, "POST", "/prompts", map[string]any{
		"title":         "Summarize article",
		"content":       "Summarize: {{article}}",
		"description":   "Summarization template",
		"collection_id": collection.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create prompt status = %d, want 201", rec.Code)
	}
	created := decode[models.Prompt](t, rec)

	if created.CollectionID == nil || *created.CollectionID != collection.ID {
		t.Errorf("collection_id = %v, want %v", created.CollectionID, collection.ID)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", created.CreatedAt, created.UpdatedAt)
	}

	rec = request(t, handler, "GET", "/prompts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	listing := decode[prompts.ListResult](t, rec)
	if listing.Total != 1 {
		t.Errorf("total = %d, want 1", listing.Total)
	}

	rec = request(t, handler, "GET", "/prompts/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("find status = %d, want 200", rec.Code)
	}

	rec = request(t, handler, "PUT", "/prompts/"+created.ID, map[string]any{
		"title":   "Replaced",
		"content": "New content",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("replace status = %d, want 200", rec.Code)
	}
	replaced := decode[models.Prompt](t, rec)
	if replaced.CollectionID != nil {
		t.Errorf("collection_id after replace = %v, want nil", replaced.CollectionID)
	}
	if replaced.Description != nil {
		t.Errorf("description after replace = %v, want nil", replaced.Description)
	}

	rec = request(t, handler, "PATCH", "/prompts/"+created.ID, map[string]any{
		"description": "Patched description",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, want 200", rec.Code)
	}
	patched := decode[models.Prompt](t, rec)
	if patched.Title != "Replaced" {
		t.Errorf("title after patch = %q, want Replaced", patched.Title)
	}
	if patched.Description == nil || *patched.Description != "Patched description" {
		t.Errorf("description after patch = %v, want Patched description", patched.Description)
	}

	rec = request(t, handler, "DELETE", "/prompts/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec = request(t, handler, "GET", "/prompts/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("find after delete status = %d, want 404", rec.Code)
	}
}

func TestCollectionDeleteUnlinksPrompts(t *testing.T) {
	handler := setup(t)

	rec := request(t, handler, "POST", "/collections", map[string]any{"name": "Doomed"})
	collection := decode[models.Collection](t, rec)

	var promptIDs []string
	for i := range 2 {
		rec = request(t, handler, "POST", "/prompts", map[string]any{
			"title":         fmt.Sprintf("Prompt %d", i),
			"content":       "content",
			"collection_id": collection.ID,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create prompt status = %d, want 201", rec.Code)
		}
		promptIDs = append(promptIDs, decode[models.Prompt](t, rec).ID)
	}

	rec = request(t, handler, "DELETE", "/collections/"+collection.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete collection status = %d, want 204", rec.Code)
	}

	for _, id := range promptIDs {
		rec = request(t, handler, "GET", "/prompts/"+id, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("prompt %s should survive, status = %d", id, rec.Code)
		}
		p := decode[models.Prompt](t, rec)
		if p.CollectionID != nil {
			t.Errorf("prompt %s collection_id = %v, want nil", id, p.CollectionID)
		}
	}
}

func TestListFilters(t *testing.T) {
	handler := setup(t)

	rec := request(t, handler, "POST", "/collections", map[string]any{"name": "Reviews"})
	collection := decode[models.Collection](t, rec)

	request(t, handler, "POST", "/prompts", map[string]any{
		"title":         "Code review checklist",
		"content":       "content",
		"collection_id": collection.ID,
	})
	request(t, handler, "POST", "/prompts", map[string]any{
		"title":   "Unrelated",
		"content": "content",
	})

	rec = request(t, handler, "GET", "/prompts?collection_id="+collection.ID, nil)
	listing := decode[prompts.ListResult](t, rec)
	if listing.Total != 1 {
		t.Errorf("collection filter total = %d, want 1", listing.Total)
	}

	rec = request(t, handler, "GET", "/prompts?search=REVIEW", nil)
	listing = decode[prompts.ListResult](t, rec)
	if listing.Total != 1 {
		t.Errorf("search total = %d, want 1", listing.Total)
	}
}

func TestStatusCodes(t *testing.T) {
	handler := setup(t)

	t.Run("validation failure returns 422", func(t *testing.T) {
		rec := request(t, handler, "POST", "/prompts", map[string]any{"title": "", "content": ""})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("malformed json returns 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/prompts", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown collection reference returns 400", func(t *testing.T) {
		rec := request(t, handler, "POST", "/prompts", map[string]any{
			"title":         "Test",
			"content":       "content",
			"collection_id": "no-such-collection",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}

		body := decode[map[string]string](t, rec)
		if body["error"] != "collection not found" {
			t.Errorf("error = %q, want collection not found", body["error"])
		}
	})

	t.Run("unknown prompt returns 404", func(t *testing.T) {
		rec := request(t, handler, "GET", "/prompts/unknown-id", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		rec := request(t, handler, "GET", "/nonexistent", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestVariablesEndpoint(t *testing.T) {
	handler := setup(t)

	rec := request(t, handler, "POST", "/prompts", map[string]any{
		"title":   "Greeting",
		"content": "{{greeting}} {{name}}, {{greeting}} again",
	})
	created := decode[models.Prompt](t, rec)

	rec = request(t, handler, "GET", "/prompts/"+created.ID+"/variables", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("variables status = %d, want 200", rec.Code)
	}

	result := decode[prompts.VariablesResult](t, rec)
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
	if len(result.Variables) != 2 || result.Variables[0] != "greeting" || result.Variables[1] != "name" {
		t.Errorf("variables = %v, want [greeting name]", result.Variables)
	}
}

func TestOpenAPIDocument(t *testing.T) {
	handler := setup(t)

	rec := request(t, handler, "GET", "/openapi.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	doc := decode[map[string]any](t, rec)
	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", doc["openapi"])
	}

	info, ok := doc["info"].(map[string]any)
	if !ok || info["title"] != "PromptLab API" {
		t.Errorf("info.title = %v, want PromptLab API", doc["info"])
	}

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatal("paths missing from document")
	}
	for _, path := range []string{"/prompts", "/prompts/{id}", "/prompts/{id}/variables", "/collections", "/collections/{id}"} {
		if _, ok := paths[path]; !ok {
			t.Errorf("path %s missing from document", path)
		}
	}
}

func TestBodyLimitRejectsOversizedPayload(t *testing.T) {
	infra := infrastructure.New()
	cfg := validConfig()
	cfg.API.MaxBodySize = "1KB"

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	router := module.NewRouter()
	router.Mount(m)

	large := make([]byte, 2048)
	for i := range large {
		large[i] = 'a'
	}
	body, _ := json.Marshal(map[string]any{"title": "big", "content": string(large)})

	req := httptest.NewRequest("POST", "/prompts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
