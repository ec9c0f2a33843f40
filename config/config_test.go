package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestLoadFrom(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AppPort != "8000" || cfg.Addr() != ":8000" {
			t.Errorf("unexpected port: %q", cfg.AppPort)
		}
		if cfg.CORSOrigin != "http://localhost:3000" {
			t.Errorf("unexpected cors origin: %q", cfg.CORSOrigin)
		}
		if cfg.Database.Driver != "sqlite" || cfg.Database.Path != "data/inventory.db" {
			t.Errorf("unexpected database defaults: %+v", cfg.Database)
		}
		if cfg.Database.MaxOpenConns != 10 || cfg.Database.MaxIdleConns != 5 {
			t.Errorf("unexpected pool defaults: %+v", cfg.Database)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.File != "" {
			t.Errorf("unexpected log defaults: %+v", cfg.Log)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{
			"APP_PORT":          "9090",
			"CORS_ORIGIN":       "https://games.example.com",
			"DB_DRIVER":         "mysql",
			"DB_HOST":           "db",
			"DB_USER":           "retro",
			"DB_PASS":           "secret",
			"DB_NAME":           "inventory",
			"DB_MAX_OPEN_CONNS": "20",
			"LOG_FORMAT":        "json",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr() != ":9090" || cfg.CORSOrigin != "https://games.example.com" {
			t.Errorf("unexpected server config: %+v", cfg)
		}
		if cfg.Database.Driver != "mysql" || cfg.Database.MaxOpenConns != 20 {
			t.Errorf("unexpected database config: %+v", cfg.Database)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("unexpected log format: %q", cfg.Log.Format)
		}
	})

	t.Run("invalid driver", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{"DB_DRIVER": "oracle"})
		if err == nil || !strings.Contains(err.Error(), "oracle") {
			t.Fatalf("expected unsupported driver error, got %v", err)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{"DB_MAX_OPEN_CONNS": "many"})
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse error, got %v", err)
		}
	})
}

func TestConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "mysql",
			cfg:  DatabaseConfig{Driver: "mysql", Host: "db", User: "retro", Pass: "pw", Name: "inv"},
			want: "retro:pw@tcp(db:3306)/inv?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres",
			cfg:  DatabaseConfig{Driver: "postgres", Host: "db", Port: "6543", User: "retro", Pass: "pw", Name: "inv"},
			want: "host=db port=6543 user=retro password=pw dbname=inv sslmode=disable",
		},
		{
			name: "sqlite file",
			cfg:  DatabaseConfig{Driver: "sqlite", Path: "data/inventory.db"},
			want: "data/inventory.db?_pragma=foreign_keys(1)",
		},
		{
			name: "sqlite with query",
			cfg:  DatabaseConfig{Driver: "sqlite", Path: "file:inv.db?cache=shared"},
			want: "file:inv.db?cache=shared&_pragma=foreign_keys(1)",
		},
		{
			name: "sqlite dsn keeps foreign keys",
			cfg:  DatabaseConfig{Driver: "sqlite", DSN: "file:custom.db?cache=shared", Path: "ignored.db"},
			want: "file:custom.db?cache=shared&_pragma=foreign_keys(1)",
		},
		{
			name: "sqlite dsn with pragma already set",
			cfg:  DatabaseConfig{Driver: "sqlite", DSN: "custom.db?_pragma=foreign_keys(1)"},
			want: "custom.db?_pragma=foreign_keys(1)",
		},
		{
			name: "explicit dsn",
			cfg:  DatabaseConfig{Driver: "postgres", DSN: "postgres://u:p@h/db", Host: "ignored"},
			want: "postgres://u:p@h/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ConnectionString(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOpenDB(t *testing.T) {
	t.Run("sqlite in memory enforces foreign keys", func(t *testing.T) {
		db, err := OpenDB(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 10}, "error")
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("failed to get sql.DB: %v", err)
		}
		defer sqlDB.Close()

		if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected a single connection for :memory:, got %d", got)
		}

		var enabled int
		if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
			t.Fatalf("failed to read pragma: %v", err)
		}
		if enabled != 1 {
			t.Errorf("expected foreign keys enabled, got %d", enabled)
		}
	})

	t.Run("sqlite dsn override enforces foreign keys on every connection", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "inventory.db")
		db, err := OpenDB(DatabaseConfig{Driver: "sqlite", DSN: dsn, MaxOpenConns: 4, MaxIdleConns: 4}, "error")
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("failed to get sql.DB: %v", err)
		}
		defer sqlDB.Close()

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			conn, err := sqlDB.Conn(ctx)
			if err != nil {
				t.Fatalf("conn %d: %v", i, err)
			}
			// held open so the next iteration gets a fresh connection
			defer conn.Close()

			var enabled int
			if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
				t.Fatalf("conn %d: failed to read pragma: %v", i, err)
			}
			if enabled != 1 {
				t.Errorf("conn %d: expected foreign keys enabled, got %d", i, enabled)
			}
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := OpenDB(DatabaseConfig{Driver: "oracle"}, "info"); err == nil {
			t.Fatal("expected error for unknown driver")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "warn", Format: "json"})

	logger.Info("dropped")
	logger.Warn("kept", "id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
	if entry["msg"] != "kept" || entry["level"] != "WARN" || entry["id"] != float64(7) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestGormLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	l := newGormLogger("info")
	query := func() (string, int64) { return "SELECT 1", 1 }

	l.Info(ctx, "dropped at warn level")
	l.Warn(ctx, "deprecated %s", "option")
	l.Error(ctx, "migration failed")
	l.Trace(ctx, time.Now(), query, errors.New("constraint failed"))
	l.Trace(ctx, time.Now(), query, logger.ErrRecordNotFound)
	l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	l.Trace(ctx, time.Now(), query, nil)

	var got []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("expected json output: %v", err)
		}
		if entry["component"] != "gorm" {
			t.Errorf("expected gorm component, got %v", entry)
		}
		got = append(got, entry["level"].(string)+" "+entry["msg"].(string))
	}

	want := []string{
		"WARN deprecated option",
		"ERROR migration failed",
		"ERROR query failed",
		"WARN slow query",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}

	buf.Reset()
	newGormLogger("debug").Trace(ctx, time.Now(), query, nil)
	if !strings.Contains(buf.String(), `"level":"DEBUG"`) || !strings.Contains(buf.String(), "SELECT 1") {
		t.Errorf("expected debug query line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
