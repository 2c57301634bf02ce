package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envKeyAPIKey, envKeyModel, envKeyAPIURL, envKeyTimeout} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
	if err.Error() != "OPENAI_API_KEY not found in environment variables" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestLoad_KeyFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-env")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("expected key from env, got %q", cfg.APIKey)
	}
	if cfg.Model != defaultModel {
		t.Errorf("expected default model %q, got %q", defaultModel, cfg.Model)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Errorf("expected default URL %q, got %q", defaultAPIURL, cfg.APIURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected no timeout by default, got %s", cfg.Timeout)
	}
}

func TestLoad_KeyFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "OPENAI_API_KEY=sk-file\nPLEASE_MODEL=gpt-4o-mini\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.APIKey != "sk-file" {
		t.Errorf("expected key from file, got %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected model from file, got %q", cfg.Model)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-env")
	path := writeEnvFile(t, "OPENAI_API_KEY=sk-file\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("expected env to win, got %q", cfg.APIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-env")
	t.Setenv(envKeyAPIURL, "http://localhost:8080/v1/chat/completions")
	t.Setenv(envKeyTimeout, "30s")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/v1/chat/completions" {
		t.Errorf("unexpected URL: %s", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Timeout)
	}
}

func TestLoad_NegativeTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-env")
	t.Setenv(envKeyTimeout, "-5s")

	if _, err := LoadFrom(""); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
