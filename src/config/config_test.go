package config

import "testing"

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when MONGODB_URI is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "5000")
	}
	if cfg.DBName != "StudyMate" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "StudyMate")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_NAME", "StudyMateTest")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8081" || cfg.DBName != "StudyMateTest" || cfg.Environment != "production" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
}
