package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Поддерживаемые провайдеры генерации изображений.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

type Config struct {
	DebugMode        bool   `env:"DEBUG_MODE"`         // Режим дебага (подробные логи Bot API)
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"` // Токен Telegram-бота, обязателен
	GoogleAPIKey     string `env:"GOOGLE_API_KEY"`     // Ключ Google AI, обязателен для провайдера gemini
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`     // Ключ OpenAI, обязателен для провайдера openai
	AIProvider       string `env:"AI_PROVIDER"`        // Провайдер генерации: gemini|openai|stub
	ModelName        string `env:"MODEL_NAME"`         // Имя модели генерации изображений
	PromptPrefix     string `env:"PROMPT_PREFIX"`      // Фиксированная инструкция перед промптом пользователя
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:  false,
		AIProvider: ProviderGemini,
		// ВАЖНО: способность модели возвращать картинки не гарантирована,
		// сверяйтесь с актуальной документацией провайдера.
		ModelName:    "models/gemini-2.0-flash-preview-image-generation",
		PromptPrefix: "Generate an image depicting:",
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага для отображения доп. инфы")
	flag.StringVar(&cfg.AIProvider, "ai-provider", cfg.AIProvider, "провайдер генерации изображений: gemini|openai|stub")
	flag.StringVar(&cfg.ModelName, "model-name", cfg.ModelName, "имя модели генерации изображений")
	flag.StringVar(&cfg.PromptPrefix, "prompt-prefix", cfg.PromptPrefix, "инструкция, добавляемая перед промптом пользователя")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет наличие обязательных секретов. Синтаксис токенов не проверяется.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TelegramBotToken) == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	switch c.AIProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GoogleAPIKey) == "" {
			return fmt.Errorf("GOOGLE_API_KEY environment variable not set")
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case ProviderStub:
		// Заглушке ключи не нужны
	default:
		return fmt.Errorf("unknown AI provider: %q", c.AIProvider)
	}
	return nil
}
