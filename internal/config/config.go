package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	TokenSecret string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	tokenSecret := os.Getenv("MY_SECRET")
	if tokenSecret == "" {
		return nil, fmt.Errorf("MY_SECRET must be set")
	}

	return &Config{
		Port:        port,
		DatabaseURL: databaseURL,
		TokenSecret: tokenSecret,
	}, nil
}
