package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Port)
	}
}

func TestLoad_KeyAlias(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "")
	t.Setenv("RAPID_API_KEY", "alias-key")
	if cfg := Load(); cfg.RapidAPIKey != "alias-key" {
		t.Errorf("key = %q", cfg.RapidAPIKey)
	}

	t.Setenv("RAPIDAPI_KEY", "primary-key")
	if cfg := Load(); cfg.RapidAPIKey != "primary-key" {
		t.Errorf("primary key not preferred, got %q", cfg.RapidAPIKey)
	}
}

func TestLoad_Port(t *testing.T) {
	t.Setenv("PORT", "9090")
	if cfg := Load(); cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
}
