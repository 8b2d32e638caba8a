package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nbackend: loopback\nevent_buffer: 32\nscan: true\ncors_origins: [\"http://a\", \"http://b\"]\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.Backend != "loopback" || cfg.EventBuffer != 32 || !cfg.Scan || len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","log_level":"debug","log_format":"json","app_uuid":"0000180d-0000-1000-8000-00805f9b34fb"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.AppUUID == "" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	u, err := cfg.App()
	if err != nil || u.String() != "0000180d-0000-1000-8000-00805f9b34fb" {
		t.Fatalf("app uuid: %v %v", u, err)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nbackend=\"native\"\nevent_buffer=9\nscan=false\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.Backend != "native" || cfg.EventBuffer != 9 || cfg.Scan {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Backend: BackendLoopback}
	cfg.ApplyDefaults()
	d := Defaults()
	if cfg.Addr != d.Addr || cfg.LogLevel != d.LogLevel || cfg.LogFormat != d.LogFormat || cfg.EventBuffer != d.EventBuffer {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Backend != BackendLoopback {
		t.Fatalf("explicit backend overwritten: %s", cfg.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Defaults()
	for name, mut := range map[string]func(*Config){
		"backend":    func(c *Config) { c.Backend = "usb" },
		"log format": func(c *Config) { c.LogFormat = "xml" },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
		"app uuid":   func(c *Config) { c.AppUUID = "not-a-uuid" },
	} {
		cfg := base
		mut(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
