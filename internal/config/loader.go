package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"gattshim/internal/common/fsutil"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "GATTMON_"

// Backend names.
const (
	BackendNative   = "native"
	BackendLoopback = "loopback"
)

// Config holds runtime parameters for gattmon.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr        string   `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
	LogLevel    string   `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	LogFormat   string   `json:"log_format" yaml:"log_format" toml:"log_format" env:"LOG_FORMAT"`
	Backend     string   `json:"backend" yaml:"backend" toml:"backend" env:"BACKEND"`
	EventBuffer int      `json:"event_buffer" yaml:"event_buffer" toml:"event_buffer" env:"EVENT_BUFFER"`
	AppUUID     string   `json:"app_uuid" yaml:"app_uuid" toml:"app_uuid" env:"APP_UUID"`
	Scan        bool     `json:"scan" yaml:"scan" toml:"scan" env:"SCAN"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "console",
		Backend:     BackendNative,
		EventBuffer: 256,
	}
}

// ApplyDefaults fills zero fields from Defaults.
func (c *Config) ApplyDefaults() {
	d := Defaults()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = d.EventBuffer
	}
}

// Validate checks enumerated and parsed fields.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNative, BackendLoopback:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendNative, BackendLoopback)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := c.App(); err != nil {
		return err
	}
	return nil
}

// App parses AppUUID; an empty value yields uuid.Nil.
func (c Config) App() (uuid.UUID, error) {
	if c.AppUUID == "" {
		return uuid.Nil, nil
	}
	u, err := uuid.Parse(c.AppUUID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("app_uuid: %w", err)
	}
	return u, nil
}

// ApplyEnv overlays GATTMON_* environment variables onto cfg. Unset
// variables leave the corresponding field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads a configuration file based on its extension. A leading '~' in
// path is expanded. Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ResolveFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
