// Package config loads service configuration from the environment,
// with a best-effort .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selection for cart, wishlist and order persistence.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Config holds the storefront runtime settings.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// BackendURL is the base URL of the commerce API.
	BackendURL string

	// CartBackend picks where mutable state is persisted:
	// BackendRemote (the commerce API) or BackendLocal (JSON files).
	CartBackend string

	// DataDir is the root directory for local JSON documents.
	DataDir string

	// AllowedOrigins configures CORS for browser clients.
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("STOREFRONT_ADDR", ":8080"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:5000"),
		CartBackend: strings.ToLower(getEnv("CART_BACKEND", BackendRemote)),
		DataDir:     getEnv("DATA_DIR", "data"),
	}

	switch cfg.CartBackend {
	case BackendRemote, BackendLocal:
	default:
		return Config{}, fmt.Errorf("unknown CART_BACKEND %q, want %q or %q",
			cfg.CartBackend, BackendRemote, BackendLocal)
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
