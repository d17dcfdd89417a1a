// Package config holds the transport-layer settings: HTTP server, CORS,
// pacing delays, route exploration cap, logging. The search core never
// reads configuration; it takes plain arguments.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/searchscope/pkg/engine"
	"github.com/dd0wney/searchscope/pkg/stream"
	"github.com/dd0wney/searchscope/pkg/validation"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Route   RouteConfig   `yaml:"route"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener. Write timeout is absent on
// purpose: a paced trace stream is long-lived, and cutting it off is the
// consumer's call, not the server's.
type ServerConfig struct {
	Port             int `yaml:"port"`
	ReadTimeoutSec   int `yaml:"read_timeout_sec"`
	IdleTimeoutSec   int `yaml:"idle_timeout_sec"`
	BodyLimitKB      int `yaml:"body_limit_kb"`
	ShutdownGraceSec int `yaml:"shutdown_grace_sec"`
}

// CORSConfig configures cross-origin access for browser visualizers.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// PacingConfig sets the per-event-type delivery delays, in milliseconds.
type PacingConfig struct {
	InitDelayMS       int `yaml:"init_delay_ms"`
	ProcessingDelayMS int `yaml:"processing_delay_ms"`
	BatchDelayMS      int `yaml:"batch_delay_ms"`
}

// RouteConfig bounds the exhaustive route search.
type RouteConfig struct {
	MaxExpansions int `yaml:"max_expansions"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:             8000,
			ReadTimeoutSec:   15,
			IdleTimeoutSec:   60,
			BodyLimitKB:      1024,
			ShutdownGraceSec: 10,
		},
		CORS: CORSConfig{
			// The original visualizer backend is open to any origin.
			AllowedOrigins: []string{"*"},
		},
		Pacing: PacingConfig{
			InitDelayMS:       400,
			ProcessingDelayMS: 50,
			BatchDelayMS:      20,
		},
		Route: RouteConfig{
			MaxExpansions: 2000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file, layered over Default, and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, layered over Default, and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section, collecting all defects.
func (c Config) Validate() error {
	return validation.NewConfigValidator("Config").
		RangeInt("Server.Port", c.Server.Port, 1, 65535).
		Positive("Server.ReadTimeoutSec", c.Server.ReadTimeoutSec).
		Positive("Server.IdleTimeoutSec", c.Server.IdleTimeoutSec).
		RangeInt("Server.BodyLimitKB", c.Server.BodyLimitKB, 1, 10240).
		Positive("Server.ShutdownGraceSec", c.Server.ShutdownGraceSec).
		NonNegative("Pacing.InitDelayMS", c.Pacing.InitDelayMS).
		NonNegative("Pacing.ProcessingDelayMS", c.Pacing.ProcessingDelayMS).
		NonNegative("Pacing.BatchDelayMS", c.Pacing.BatchDelayMS).
		NonNegative("Route.MaxExpansions", c.Route.MaxExpansions).
		OneOf("Logging.Level", c.Logging.Level, "debug", "info", "warn", "error").
		Err()
}

// DelayPolicy builds the stream pacing policy from the config.
func (c Config) DelayPolicy() stream.DelayPolicy {
	return stream.DelayPolicy{
		engine.EventInit:          time.Duration(c.Pacing.InitDelayMS) * time.Millisecond,
		engine.EventProcessing:    time.Duration(c.Pacing.ProcessingDelayMS) * time.Millisecond,
		engine.EventBatchComplete: time.Duration(c.Pacing.BatchDelayMS) * time.Millisecond,
	}
}
