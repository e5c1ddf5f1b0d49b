package config

import (
	"testing"

	apperrors "simvar/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIMVAR_PORT", "")
	t.Setenv("SIMVAR_SEED", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port: got %s", cfg.Server.Port)
	}
	if cfg.RNG.Seeded {
		t.Error("no SIMVAR_SEED set: seed policy must be entropy")
	}
}

func TestLoadExplicitSeed(t *testing.T) {
	t.Setenv("SIMVAR_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.RNG.Seeded || cfg.RNG.Seed != 42 {
		t.Errorf("got %+v, want seeded 42", cfg.RNG)
	}
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("SIMVAR_SEED", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("bad seed must fail")
	}
	if apperrors.GetCode(err) != apperrors.CodeConfigInvalid {
		t.Errorf("wrong code: %s", apperrors.GetCode(err))
	}
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("SIMVAR_SEED", "")
	t.Setenv("SIMVAR_PORT", "eighty")

	if _, err := Load(); err == nil {
		t.Fatal("bad port must fail")
	}
}
