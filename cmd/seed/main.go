package main

import (
	"log"

	"github.com/cartloop-dev/cartloop/db"
	"github.com/cartloop-dev/cartloop/internal/config"
	"github.com/cartloop-dev/cartloop/internal/seed"
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

	if err := seed.Load(conn); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seeded 3 users, 4 items, 4 orders")
}
