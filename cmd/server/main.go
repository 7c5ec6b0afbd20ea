package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"simpeg/internal/app/server"
	"simpeg/internal/domain/auth"
	"simpeg/internal/domain/employee"
	"simpeg/internal/platform/config"
	"simpeg/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if err := employee.NewStore(pool).EnsureSchema(ctx); err != nil {
		log.Fatalf("schema heal failed: %v", err)
	}

	registry := auth.NewRegistry()
	if err := registry.Bootstrap(cfg.SeedAdminUsername, cfg.SeedAdminPassword, auth.RoleAdmin); err != nil {
		log.Fatalf("bootstrap admin failed: %v", err)
	}

	handler := server.New(cfg, pool, registry)

	log.Printf("SIMPEG server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
