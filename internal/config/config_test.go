package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.LLM.Generation.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %v", cfg.LLM.Generation.Temperature)
	}
	if cfg.LLM.Generation.MaxTokens != 1024 {
		t.Errorf("expected default max tokens 1024, got %d", cfg.LLM.Generation.MaxTokens)
	}
	if cfg.Assistant.ContactInfo != DefaultContactInfo {
		t.Errorf("unexpected contact info %q", cfg.Assistant.ContactInfo)
	}
	if cfg.Database.MySQL.Driver != "mysql" {
		t.Errorf("expected mysql driver by default, got %q", cfg.Database.MySQL.Driver)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "llm:\n  api_key: from-file\n")
	t.Setenv("LLM_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("expected env override, got %q", cfg.LLM.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLLMTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"default when unset", 0, 30 * time.Second},
		{"configured", 5, 5 * time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LLMConfig{TimeoutSeconds: tc.seconds}.Timeout()
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
