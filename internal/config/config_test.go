package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DATA_DIR", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorageBackend != BackendJSON {
			t.Errorf("expected json backend, got %s", cfg.StorageBackend)
		}
		if cfg.DataDir != "data" {
			t.Errorf("expected data dir 'data', got %s", cfg.DataDir)
		}
	})

	t.Run("backend_is_case_insensitive", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "Postgres")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorageBackend != BackendPostgres {
			t.Errorf("expected postgres backend, got %s", cfg.StorageBackend)
		}
	})

	t.Run("unknown_backend", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "mongo")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown backend")
		}
	})
}

func TestPostgresURL(t *testing.T) {
	t.Run("database_url_wins", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://u:p@db:5432/x", DBHost: "ignored"}
		if got := cfg.PostgresURL(); got != "postgres://u:p@db:5432/x" {
			t.Errorf("unexpected url %s", got)
		}
	})

	t.Run("assembled_from_parts", func(t *testing.T) {
		cfg := &Config{
			DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5433", DBName: "n", DBSSLMode: "require",
		}
		want := "postgres://u:p@h:5433/n?sslmode=require"
		if got := cfg.PostgresURL(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
