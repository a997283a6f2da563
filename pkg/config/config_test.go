package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DB.Driver != DriverSQLite {
		t.Errorf("expected driver %q, got %q", DriverSQLite, cfg.DB.Driver)
	}
	if cfg.DB.Path != "board_data.sqlite3" {
		t.Errorf("unexpected db path %q", cfg.DB.Path)
	}
	if cfg.Board.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.Board.PageSize)
	}
	if cfg.Board.Title != "miniBoard" {
		t.Errorf("expected title miniBoard, got %q", cfg.Board.Title)
	}
	if cfg.Session.Cookie != "login" || cfg.Session.TTLHours != 240 {
		t.Errorf("unexpected session config %+v", cfg.Session)
	}
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9999\"\nboard:\n  page_size: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MINIBOARD_DB_PATH", "/tmp/other.sqlite3")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":9999" {
		t.Errorf("expected address from file, got %q", cfg.Server.Address)
	}
	if cfg.Board.PageSize != 5 {
		t.Errorf("expected page size 5, got %d", cfg.Board.PageSize)
	}
	if cfg.DB.Path != "/tmp/other.sqlite3" {
		t.Errorf("expected db path from env, got %q", cfg.DB.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"postgres", func(c *Config) { c.DB.Driver = DriverPostgres }, false},
		{"unknown driver", func(c *Config) { c.DB.Driver = "oracle" }, true},
		{"zero page size", func(c *Config) { c.Board.PageSize = 0 }, true},
		{"empty secret", func(c *Config) { c.Session.Secret = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				DB:      DBConfig{Driver: DriverSQLite},
				Session: SessionConfig{Secret: "s"},
				Board:   BoardConfig{PageSize: 10},
			}
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
