package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/promptlab/promptlab/pkg/formatting"
	"github.com/promptlab/promptlab/pkg/middleware"
	"github.com/promptlab/promptlab/pkg/openapi"
)

const (
	EnvAPIBasePath    = "PROMPTLAB_API_BASE_PATH"
	EnvAPIMaxBodySize = "PROMPTLAB_API_MAX_BODY_SIZE"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTLAB_CORS_ENABLED",
	Origins:          "PROMPTLAB_CORS_ORIGINS",
	AllowedMethods:   "PROMPTLAB_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTLAB_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTLAB_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTLAB_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "PROMPTLAB_OPENAPI_TITLE",
	Description: "PROMPTLAB_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request sizing, CORS, and OpenAPI settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	OpenAPI     openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize parsed into bytes, falling back
// to 1MB when the configured value does not parse.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1024 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	return nil
}
