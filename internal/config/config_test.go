package config

import (
	"testing"
	"time"
)

// TestParseBoolEnv checks boolean parsing and fallback.
func TestParseBoolEnv(t *testing.T) {
	t.Setenv("ASSISTANT_STRICT_ORDERING", "true")

	got, err := parseBoolEnv("ASSISTANT_STRICT_ORDERING", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}

	got, err = parseBoolEnv("MISSING_ENV", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got {
		t.Fatal("expected fallback true")
	}
}

// TestParseBoolEnvInvalid checks rejection of non-boolean values.
func TestParseBoolEnvInvalid(t *testing.T) {
	t.Setenv("ASSISTANT_SPEECH_ENABLED", "maybe")

	if _, err := parseBoolEnv("ASSISTANT_SPEECH_ENABLED", false); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

// TestParseDurationEnv checks duration parsing.
func TestParseDurationEnv(t *testing.T) {
	t.Setenv("ASSISTANT_SESSION_TTL", "45m")

	got, err := parseDurationEnv("ASSISTANT_SESSION_TTL", time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 45*time.Minute {
		t.Fatalf("expected 45m, got %v", got)
	}
}

// TestValidateLocale checks rejection of unsupported default locales.
func TestValidateLocale(t *testing.T) {
	cfg := Config{
		Server:    ServerConfig{Port: 8080},
		AI:        AIConfig{BaseURL: "https://api.groq.com/openai/v1", Model: "llama-3.3-70b-versatile", RateLimitPerMinute: 30, RateLimitBurst: 10},
		Assistant: AssistantConfig{DefaultLocale: "french"},
	}

	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for unsupported locale")
	}

	cfg.Assistant.DefaultLocale = "hindi"
	if err := cfg.validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
