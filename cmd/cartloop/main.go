package main

import (
	"log"

	"github.com/cartloop-dev/cartloop/db"
	"github.com/cartloop-dev/cartloop/internal/auth"
	"github.com/cartloop-dev/cartloop/internal/config"
	"github.com/cartloop-dev/cartloop/internal/router"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewTokenService(cfg.TokenSecret)

	r := router.NewRouter(conn, tokens)

	log.Printf("Server up: http://localhost:%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
