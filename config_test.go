package goSession

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	missingName := cfg
	missingName.CookieName = ""
	if err := missingName.Validate(); !errors.Is(err, ErrMissingCookieName) {
		t.Fatalf("expected ErrMissingCookieName, got %v", err)
	}

	badLifetime := cfg
	badLifetime.PermanentLifetime = 0
	if err := badLifetime.Validate(); !errors.Is(err, ErrInvalidLifetime) {
		t.Fatalf("expected ErrInvalidLifetime, got %v", err)
	}

	unsignable := cfg
	unsignable.UseSigner = true
	if err := unsignable.Validate(); !errors.Is(err, ErrMissingSecretKey) {
		t.Fatalf("expected ErrMissingSecretKey, got %v", err)
	}

	unsignable.SecretKey = "top-secret"
	if err := unsignable.Validate(); err != nil {
		t.Fatalf("signer config with secret must validate: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SESSION_COOKIE_NAME", "sid")
	t.Setenv("SESSION_KEY_PREFIX", "app:sess:")
	t.Setenv("SESSION_HIJACK_PROTECTION", "true")
	t.Setenv("SESSION_EXPLICIT", "true")
	t.Setenv("SESSION_PERMANENT_LIFETIME", "48h")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.CookieName != "sid" || cfg.KeyPrefix != "app:sess:" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if !cfg.HijackProtection || !cfg.Explicit {
		t.Fatalf("boolean options not applied: %+v", cfg)
	}
	if cfg.PermanentLifetime != 48*time.Hour {
		t.Fatalf("lifetime not applied: %v", cfg.PermanentLifetime)
	}
	// Untouched fields keep their documented defaults.
	if cfg.CookiePath != "/" || !cfg.CookieHTTPOnly || !cfg.Permanent {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
