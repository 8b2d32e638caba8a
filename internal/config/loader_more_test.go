package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gattshim/internal/common/fsutil"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeTempFile(t, home, "gattmon.toml", "backend=\"loopback\"\n")
	cfg, err := Load("~/gattmon.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != "loopback" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
	_, err = Load("~/missing.toml")
	if !errors.Is(err, fsutil.ErrNotFound) || !strings.Contains(err.Error(), filepath.Join(home, "missing.toml")) {
		t.Fatalf("expected not found error naming the expanded path, got %v", err)
	}
}

func TestLoad_RejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for a directory path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "backend": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "addr=:8080\nbackend\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GATTMON_ADDR", ":6060")
	t.Setenv("GATTMON_SCAN", "true")
	t.Setenv("GATTMON_EVENT_BUFFER", "8")
	t.Setenv("GATTMON_CORS_ORIGINS", "http://a,http://b")
	cfg := Config{Backend: BackendLoopback, LogLevel: "warn"}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Addr != ":6060" || !cfg.Scan || cfg.EventBuffer != 8 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.Backend != BackendLoopback || cfg.LogLevel != "warn" {
		t.Fatalf("unset variables must not clear fields: %+v", cfg)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("GATTMON_EVENT_BUFFER", "lots")
	var cfg Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
