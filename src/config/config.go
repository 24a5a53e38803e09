package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	Environment  string
	AllowOrigins string
}

// Load reads configuration from a .env file (when present) and the
// environment. MONGODB_URI is required; credentials never live in code.
func Load() (*Config, error) {
	// Ignore the error if there is no .env file; plain env vars still work.
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       os.Getenv("DB_NAME"),
		Environment:  os.Getenv("ENV"),
		AllowOrigins: os.Getenv("ALLOW_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "StudyMate"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required but not set")
	}

	return cfg, nil
}
