package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file should fall back to defaults: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "school_activities" {
		t.Errorf("expected default dbname school_activities, got %q", cfg.Database.DBName)
	}
	if !cfg.Seed.Enabled {
		t.Error("seeding should be enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
database:
  dbname: "activities_test"
seed:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090 from file, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "activities_test" {
		t.Errorf("expected dbname activities_test from file, got %q", cfg.Database.DBName)
	}
	if cfg.Seed.Enabled {
		t.Error("seeding should be disabled by the file")
	}
	// Untouched values keep their defaults
	if cfg.Database.Host != "localhost" {
		t.Errorf("expected default host localhost, got %q", cfg.Database.Host)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("SEED_ENABLED", "false")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("env var should win over file, got port %q", cfg.Server.Port)
	}
	if cfg.Database.Password != "secret" {
		t.Errorf("expected password from env, got %q", cfg.Database.Password)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("expected max open conns 50 from env, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Seed.Enabled {
		t.Error("SEED_ENABLED=false should disable seeding")
	}
}

func TestLoadConfigInvalidLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected validation error for invalid conn_max_lifetime")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "school"
	cfg.Database.SSLMode = "require"

	want := "postgres://app:pw@db.internal:5433/school?sslmode=require"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string mismatch:\n got %q\nwant %q", got, want)
	}
}
