package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: 9090
  host: "127.0.0.1"
  mode: "debug"
database:
  uri: "mongodb://localhost:27017"
  name: "fakturo_dev"
`), 0o644))

	cfg, err := Load(cfgPath)
	requireNoError(t, err)
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("expected debug mode, got %q", cfg.Server.Mode)
	}
	if cfg.Database.Name != "fakturo_dev" {
		t.Fatalf("expected database name fakturo_dev, got %q", cfg.Database.Name)
	}
}

func TestLoad_DefaultsApplyWhenFileOmitsThem(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
database:
  uri: "mongodb://localhost:27017"
`), 0o644))

	cfg, err := Load(cfgPath)
	requireNoError(t, err)
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("expected default host, got %q", cfg.Server.Host)
	}
	if cfg.Server.Mode != "release" {
		t.Fatalf("expected release mode, got %q", cfg.Server.Mode)
	}
	if cfg.Database.Name != "fakturo" {
		t.Fatalf("expected default database name, got %q", cfg.Database.Name)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: 9090
database:
  uri: "mongodb://localhost:27017"
`), 0o644))

	t.Setenv("FAKTURO_SERVER__PORT", "7070")
	t.Setenv("FAKTURO_DATABASE__NAME", "fakturo_env")

	cfg, err := Load(cfgPath)
	requireNoError(t, err)
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env override port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Database.Name != "fakturo_env" {
		t.Fatalf("expected env override database name, got %q", cfg.Database.Name)
	}
}

func TestLoad_MissingURIFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: 8080
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "database.uri is required") {
		t.Fatalf("expected missing uri error, got %v", err)
	}
}

func TestLoad_InvalidServerPortFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: -1
database:
  uri: "mongodb://localhost:27017"
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid server.port") {
		t.Fatalf("expected invalid server.port error, got %v", err)
	}
}

func TestLoad_InvalidModeFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fakturo.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  mode: "verbose"
database:
  uri: "mongodb://localhost:27017"
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid server.mode") {
		t.Fatalf("expected invalid server.mode error, got %v", err)
	}
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
