package telegram

import (
	"context"
	"fmt"
	"strings"

	"GeminiImageBot/internal/service/relay"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Config хранит параметры подключения к Telegram Bot API.
type Config struct {
	Token string
	Debug bool
}

// Run запускает long polling и диспетчеризацию команд.
// Функция завершается по отмене ctx или закрытию канала обновлений.
func Run(ctx context.Context, logger *zap.SugaredLogger, cfg Config, relaySvc *relay.Relay) error {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		logger.Warnw("Telegram bot not configured: missing token")
		return nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram init: %w", err)
	}
	api.Debug = cfg.Debug
	logger.Infow("Telegram connected", "as", api.Self.UserName)

	bot := &Bot{api: api, relay: relaySvc, logger: logger}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			bot.dispatch(ctx, update)
		}
	}
}
