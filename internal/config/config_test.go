package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != "sqlite" {
		t.Errorf("Provider = %q, want sqlite", cfg.Provider)
	}
	if cfg.SchemaPath != "models.dq" {
		t.Errorf("SchemaPath = %q, want models.dq", cfg.SchemaPath)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DQUEST_PROVIDER", "postgresql")
	t.Setenv("DQUEST_SCHEMA_PATH", "app.dq")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != "postgresql" {
		t.Errorf("Provider = %q, want postgresql", cfg.Provider)
	}
	if cfg.SchemaPath != "app.dq" {
		t.Errorf("SchemaPath = %q, want app.dq", cfg.SchemaPath)
	}
	if cfg.DatabaseURL != "postgres://localhost/app" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}
