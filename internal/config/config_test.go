package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/domattr/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if !cfg.Metrics.On() {
		t.Error("metrics should default to enabled")
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing should default to disabled")
	}
	if cfg.Server.Address() != "localhost:3070" {
		t.Errorf("Address() = %q", cfg.Server.Address())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"server": {"port": 9000},
		"metrics": {"enabled": false, "namespace": "ui"},
		"tracing": {"enabled": true},
		"render": {"pretty": true},
		"logLevel": "DEBUG"
	}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Server.Host != DefaultHost {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Metrics.On() {
		t.Error("explicit metrics.enabled=false should stick")
	}
	if cfg.Metrics.Namespace != "ui" {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != DefaultNamespace {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	lvl, err := cfg.SlogLevel()
	if err != nil || lvl != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v", lvl, err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{"server":`},
		{"bad port", `{"server":{"port":70000}}`},
		{"bad level", `{"logLevel":"loud"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("want error")
			}
			e, ok := err.(*errors.Error)
			if !ok || e.Code != "E120" {
				t.Errorf("err = %v, want E120", err)
			}
		})
	}
}
