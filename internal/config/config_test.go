package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/promptlab/promptlab/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "1.0.0"

[server]
host = "0.0.0.0"
port = 8000
read_timeout = "30s"
write_timeout = "1m"

[api]
base_path = "/"
max_body_size = "1MB"

[api.cors]
enabled = false
`

const overlayConfig = `
[server]
port = 9090

[api]
base_path = "/v1"
`

func writeFile(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port: got %d, want 8000", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/" {
		t.Errorf("api base_path: got %s, want /", cfg.API.BasePath)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("version: got %s, want 1.0.0", cfg.Version)
	}
	if cfg.API.CORS.Enabled {
		t.Error("cors enabled: got true, want false")
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)
	writeFile(t, dir, "config.staging.toml", overlayConfig)
	t.Chdir(dir)

	t.Setenv("PROMPTLAB_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("api base_path: got %s, want /v1 (from overlay)", cfg.API.BasePath)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server host: got %s, want 0.0.0.0 (from base)", cfg.Server.Host)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	t.Setenv("PROMPTLAB_VERSION", "2.0.0")
	t.Setenv("PROMPTLAB_SERVER_PORT", "3000")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port default: got %d, want 8000", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/" {
		t.Errorf("api base_path default: got %s, want /", cfg.API.BasePath)
	}
	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("shutdown_timeout default: got %s, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "PROMPTLAB_VERSION=9.9.9\n")
	t.Chdir(dir)

	// godotenv writes into the process environment; clear it afterward
	// so later tests see a clean slate.
	t.Cleanup(func() { os.Unsetenv("PROMPTLAB_VERSION") })

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "9.9.9" {
		t.Errorf("version: got %s, want 9.9.9 (from .env)", cfg.Version)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "shutdown_timeout = [broken")
	t.Chdir(dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad shutdown timeout", "shutdown_timeout = \"soon\""},
		{"bad port", "[server]\nport = 99999"},
		{"bad base path", "[api]\nbase_path = \"v1\""},
		{"bad max body size", "[api]\nmax_body_size = \"huge\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.toml", tt.content)
			t.Chdir(dir)

			if _, err := config.Load(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnvDefault(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}
}

func TestEnvFromEnvVar(t *testing.T) {
	t.Setenv("PROMPTLAB_ENV", "production")

	cfg := &config.Config{}
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "45s"}
	if d := cfg.ShutdownTimeoutDuration(); d != 45*time.Second {
		t.Errorf("shutdown timeout: got %v, want 45s", d)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 8000}
	if addr := cfg.Addr(); addr != "127.0.0.1:8000" {
		t.Errorf("addr: got %s, want 127.0.0.1:8000", addr)
	}
}

func TestMaxBodySizeBytes(t *testing.T) {
	cfg := config.APIConfig{MaxBodySize: "2MB"}
	if size := cfg.MaxBodySizeBytes(); size != 2*1024*1024 {
		t.Errorf("max body size: got %d, want %d", size, 2*1024*1024)
	}

	cfg.MaxBodySize = "not-a-size"
	if size := cfg.MaxBodySizeBytes(); size != 1024*1024 {
		t.Errorf("max body size fallback: got %d, want %d", size, 1024*1024)
	}
}

func TestCORSEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	t.Setenv("PROMPTLAB_CORS_ENABLED", "true")
	t.Setenv("PROMPTLAB_CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !cfg.API.CORS.Enabled {
		t.Error("cors enabled: got false, want true")
	}
	if len(cfg.API.CORS.Origins) != 2 {
		t.Errorf("cors origins: got %v, want 2 entries", cfg.API.CORS.Origins)
	}
}
