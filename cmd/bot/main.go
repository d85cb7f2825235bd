package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"GeminiImageBot/internal/adapter/chat/telegram"
	"GeminiImageBot/internal/ai"
	"GeminiImageBot/internal/config"
	"GeminiImageBot/internal/service/relay"

	"go.uber.org/zap"
)

func main() {
	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	cfg, err := config.NewConfig()
	if err != nil {
		sugar.Errorw("Некорректная конфигурация", "error", err)
		os.Exit(1)
	}

	sugar.Infow(
		"Starting bot",
		"DebugMode", cfg.DebugMode,
		"provider", cfg.AIProvider,
		"model", cfg.ModelName,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, closeClient, err := buildAIClient(ctx, cfg, sugar)
	if err != nil {
		sugar.Errorw("Не удалось создать клиента провайдера", "provider", cfg.AIProvider, "error", err)
		os.Exit(1)
	}
	defer closeClient()

	relaySvc := relay.New(client, nil, sugar)

	tgCfg := telegram.Config{Token: cfg.TelegramBotToken, Debug: cfg.DebugMode}
	if err := telegram.Run(ctx, sugar, tgCfg, relaySvc); err != nil && !errors.Is(err, context.Canceled) {
		sugar.Errorw("Бот завершился с ошибкой", "error", err)
		os.Exit(1)
	}
	sugar.Infow("Bot stopped")
}

// buildAIClient создаёт провайдера генерации по конфигурации.
// Возвращаемая функция освобождает ресурсы клиента (no-op, если их нет).
func buildAIClient(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) (ai.Client, func(), error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		client, err := ai.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.ModelName, cfg.PromptPrefix, sugar)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				sugar.Warnw("Не удалось закрыть клиента Gemini", "error", err)
			}
		}, nil
	case config.ProviderOpenAI:
		return ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.PromptPrefix, sugar), func() {}, nil
	case config.ProviderStub:
		return ai.NewStubClient(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown AI provider: %q", cfg.AIProvider)
	}
}
