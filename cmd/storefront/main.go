package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/awe-electronics/storefront/internal/backend"
	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/config"
	"github.com/awe-electronics/storefront/internal/handlers"
	"github.com/awe-electronics/storefront/internal/localstore"
)

func setupRouter(deps handlers.Deps, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	handlers.RegisterRoutes(r, deps)
	return r
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	client := backend.NewClient(cfg.BackendURL, nil)
	deps := handlers.Deps{
		// the catalog is read-only and always comes from the commerce API
		Store:  catalog.NewStore(client),
		Client: client,
		Mode:   cfg.CartBackend,
	}
	if cfg.CartBackend == config.BackendLocal {
		deps.Files = localstore.New(cfg.DataDir)
	}

	r := setupRouter(deps, cfg.AllowedOrigins)

	slog.Info("storefront listening", "addr", cfg.Addr, "backend", cfg.BackendURL, "mode", cfg.CartBackend)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
