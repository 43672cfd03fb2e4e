package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("NOTES_HTTP_PORT")
	_ = os.Unsetenv("NOTES_DEFAULT_PAGE_SIZE")
	_ = os.Unsetenv("NOTES_MAX_BODY_BYTES")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.DefaultPageSize != 10 || cfg.MaxBodyBytes != 1048576 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("NOTES_DEFAULT_PAGE_SIZE", "25")
	defer func() { _ = os.Unsetenv("NOTES_DEFAULT_PAGE_SIZE") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DefaultPageSize != 25 {
		t.Fatalf("page size env override failed, got %d", cfg.DefaultPageSize)
	}
}

func TestConfigLoad_RejectsInvalidPort(t *testing.T) {
	_ = os.Setenv("NOTES_HTTP_PORT", "0")
	defer func() { _ = os.Unsetenv("NOTES_HTTP_PORT") }()

	if _, err := New(); err == nil {
		t.Fatalf("expected error for port 0")
	}
}
