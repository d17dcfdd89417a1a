package config

import (
	"strings"
	"testing"
	"time"

	"github.com/dd0wney/searchscope/pkg/engine"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
server:
  port: 9090
pacing:
  processing_delay_ms: 5
route:
  max_expansions: 500
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Pacing.ProcessingDelayMS != 5 {
		t.Errorf("processing delay = %d, want 5", cfg.Pacing.ProcessingDelayMS)
	}
	if cfg.Route.MaxExpansions != 500 {
		t.Errorf("max expansions = %d, want 500", cfg.Route.MaxExpansions)
	}
	// Untouched sections keep their defaults.
	if cfg.Pacing.InitDelayMS != Default().Pacing.InitDelayMS {
		t.Errorf("init delay = %d, want default", cfg.Pacing.InitDelayMS)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %s, want info", cfg.Logging.Level)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte(`
server:
  port: -1
logging:
  level: loud
`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Port") || !strings.Contains(err.Error(), "Level") {
		t.Errorf("expected all defects reported, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("server: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDelayPolicy(t *testing.T) {
	cfg := Default()
	cfg.Pacing = PacingConfig{InitDelayMS: 100, ProcessingDelayMS: 10, BatchDelayMS: 1}

	policy := cfg.DelayPolicy()
	if policy[engine.EventInit] != 100*time.Millisecond {
		t.Errorf("init delay = %v", policy[engine.EventInit])
	}
	if policy[engine.EventExpand] != 0 {
		t.Errorf("expand delay = %v, want 0", policy[engine.EventExpand])
	}
}
