package config

import (
	"strings"
	"testing"
)

type testSettings struct {
	Driver string `env:"FREIGHTSIM_TEST_DRIVER" envDefault:"sqlite"`
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse[testSettings]()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Driver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %q", cfg.Driver)
	}
}

func TestParseOverride(t *testing.T) {
	t.Setenv("FREIGHTSIM_TEST_DRIVER", "bigquery")

	cfg, err := Parse[testSettings]()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Driver != "bigquery" {
		t.Fatalf("expected bigquery, got %q", cfg.Driver)
	}
}

type badSettings struct {
	Count int `env:"FREIGHTSIM_TEST_COUNT"`
}

func TestParseError(t *testing.T) {
	t.Setenv("FREIGHTSIM_TEST_COUNT", "not-an-int")

	_, err := Parse[badSettings]()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
