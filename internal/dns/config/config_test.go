package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	// No env overrides
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.Port != 53 {
		t.Errorf("expected Port=53, got %d", cfg.Port)
	}
	if cfg.CacheSize != 1000 {
		t.Errorf("expected CacheSize=1000, got %d", cfg.CacheSize)
	}
	if cfg.DisableCache {
		t.Error("expected DisableCache=false by default")
	}
	if cfg.JournalPath != "" {
		t.Errorf("expected JournalPath to be empty by default, got %q", cfg.JournalPath)
	}
	wantServers := []string{"1.1.1.1:53", "1.0.0.1:53"}
	if len(cfg.Servers) != len(wantServers) {
		t.Errorf("expected Servers length %d, got %d", len(wantServers), len(cfg.Servers))
	} else {
		for i, v := range wantServers {
			if cfg.Servers[i] != v {
				t.Errorf("expected Servers[%d]=%q, got %q", i, v, cfg.Servers[i])
			}
		}
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("RGDNS_ENV", "dev")
	t.Setenv("RGDNS_LOG_LEVEL", "debug")
	t.Setenv("RGDNS_PORT", "9953")
	t.Setenv("RGDNS_CACHE_SIZE", "2000")
	t.Setenv("RGDNS_DISABLE_CACHE", "true")
	t.Setenv("RGDNS_JOURNAL_PATH", "/tmp/journal.db")
	t.Setenv("RGDNS_SERVERS", "8.8.8.8:53 8.8.4.4:53")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.Port != 9953 {
		t.Errorf("expected Port=9953, got %d", cfg.Port)
	}
	if cfg.CacheSize != 2000 {
		t.Errorf("expected CacheSize=2000, got %d", cfg.CacheSize)
	}
	if !cfg.DisableCache {
		t.Error("expected DisableCache=true")
	}
	if cfg.JournalPath != "/tmp/journal.db" {
		t.Errorf("expected JournalPath=/tmp/journal.db, got %q", cfg.JournalPath)
	}
	wantServers := []string{"8.8.8.8:53", "8.8.4.4:53"}
	if len(cfg.Servers) != len(wantServers) {
		t.Errorf("expected Servers length %d, got %d", len(wantServers), len(cfg.Servers))
	} else {
		for i, v := range wantServers {
			if cfg.Servers[i] != v {
				t.Errorf("expected Servers[%d]=%q, got %q", i, v, cfg.Servers[i])
			}
		}
	}
}

func TestLoad_CommaSeparatedServers(t *testing.T) {
	t.Setenv("RGDNS_SERVERS", "9.9.9.9:53,149.112.112.112:53")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(cfg.Servers) != 2 || cfg.Servers[0] != "9.9.9.9:53" || cfg.Servers[1] != "149.112.112.112:53" {
		t.Errorf("unexpected Servers: %v", cfg.Servers)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("RGDNS_ENV", "staging")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid RGDNS_ENV, got nil")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("RGDNS_LOG_LEVEL", "trace")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid RGDNS_LOG_LEVEL, got nil")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("RGDNS_PORT", "65535")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range RGDNS_PORT, got nil")
	}
}

func TestLoad_InvalidServers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing port", "8.8.8.8"},
		{"bad ip", "not-an-ip:53"},
		{"port zero", "8.8.8.8:0"},
		{"hostname instead of ip", "dns.example.com:53"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RGDNS_SERVERS", tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for RGDNS_SERVERS=%q, got nil", tt.value)
			}
		})
	}
}

func TestLoad_WhenKoanfDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { defaultLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading defaults, got nil")
	}
}

func TestLoad_WhenKoanfEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}

func TestLoad_RegisterValidationFails(t *testing.T) {
	orig := registerValidation
	registerValidation = func(v *validator.Validate) error { return errors.New("mocked validation error") }
	defer func() { registerValidation = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked validation error") {
		t.Fatal("expected error when registering validation, got nil")
	}
}
