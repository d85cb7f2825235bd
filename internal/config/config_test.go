package config

import (
	"testing"

	"github.com/caarlos0/env/v6"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.AIProvider != ProviderGemini {
		t.Fatalf("unexpected default provider: %s", cfg.AIProvider)
	}
	if cfg.ModelName == "" {
		t.Fatal("default model name must not be empty")
	}
	if cfg.PromptPrefix == "" {
		t.Fatal("default prompt prefix must not be empty")
	}
	if cfg.DebugMode {
		t.Fatal("debug mode must be off by default")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("MODEL_NAME", "custom-model")
	t.Setenv("DEBUG_MODE", "true")

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("env.Parse err: %v", err)
	}

	if cfg.TelegramBotToken != "tg-token" {
		t.Fatalf("unexpected token: %s", cfg.TelegramBotToken)
	}
	if cfg.AIProvider != ProviderOpenAI {
		t.Fatalf("unexpected provider: %s", cfg.AIProvider)
	}
	if cfg.ModelName != "custom-model" {
		t.Fatalf("unexpected model: %s", cfg.ModelName)
	}
	if !cfg.DebugMode {
		t.Fatal("debug mode not picked up from env")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate err: %v", err)
	}
}

func TestValidateMissingTelegramToken(t *testing.T) {
	cfg := Defaults()
	cfg.GoogleAPIKey = "g-key"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing telegram token")
	}
}

func TestValidateMissingProviderKey(t *testing.T) {
	cases := []struct {
		name     string
		provider string
	}{
		{"gemini without google key", ProviderGemini},
		{"openai without openai key", ProviderOpenAI},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.TelegramBotToken = "tg-token"
			cfg.AIProvider = tc.provider
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error for missing provider key")
			}
		})
	}
}

func TestValidateStubNeedsNoKeys(t *testing.T) {
	cfg := Defaults()
	cfg.TelegramBotToken = "tg-token"
	cfg.AIProvider = ProviderStub
	if err := cfg.Validate(); err != nil {
		t.Fatalf("stub provider must not require keys: %v", err)
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := Defaults()
	cfg.TelegramBotToken = "tg-token"
	cfg.AIProvider = "imagen"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
