package telegram

import (
	"context"
	"fmt"
	"strings"

	"GeminiImageBot/internal/service/relay"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Тексты ответов бота. Каждый сценарий /generate заканчивается ровно одним из них.
const (
	processingText = "✨ Generating your image... Please wait."
	usageText      = "Please provide a description after the /generate command.\n" +
		"Example: /generate A serene beach with palm trees"
	noImageText = "Sorry, I received a response from the AI, but couldn't extract the image data."
	blockedText = "Sorry, your request was blocked due to safety reasons. Please try a different prompt."
	stoppedText = "Sorry, the generation was stopped. This might be due to safety filters or content policy. " +
		"Please refine your prompt."
	failedText = "Sorry, an unexpected error occurred while trying to generate the image. Please try again later."
)

// sender минимальная поверхность Bot API, нужная обработчикам.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// generator минимальная поверхность оркестратора, нужная обработчику /generate.
type generator interface {
	Generate(ctx context.Context, prompt string) relay.Result
}

// Bot держит клиент Telegram и обработчики команд. Состояния между запросами нет.
type Bot struct {
	api    sender
	relay  generator
	logger *zap.SugaredLogger
}

// dispatch направляет обновление в обработчик по точному имени команды.
// Прочие обновления игнорируются.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "help":
		b.handleHelp(msg)
	case "generate":
		// Вызов провайдера блокирующий: уводим его из цикла диспетчеризации,
		// чтобы медленный ответ не задерживал обновления других пользователей.
		go b.handleGenerate(ctx, msg)
	}
}

// handleStart отвечает статичным приветствием.
func (b *Bot) handleStart(msg *tgbotapi.Message) {
	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	welcome := fmt.Sprintf(
		"Hi %s! 👋\n\n"+
			"I can generate images based on your descriptions using AI.\n\n"+
			"Use the command /generate <your detailed description> to create an image.\n\n"+
			"Example:\n/generate A futuristic cityscape at sunset, cyberpunk style",
		name,
	)
	b.reply(msg.Chat.ID, welcome)
}

// handleHelp отвечает статичной справкой с Markdown-разметкой.
func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	help := "*How to use me:*\n" +
		"1. Use the /generate command followed by a description of the image you want.\n" +
		"   Example: `/generate A fluffy white cat sleeping on a bookshelf`\n\n" +
		"2. Be descriptive! The more detail you provide, the better the AI can understand your request.\n\n" +
		"*Important note:* Image generation can take a few moments. Please be patient."
	m := tgbotapi.NewMessage(msg.Chat.ID, help)
	m.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(m); err != nil {
		b.logger.Errorw("Не удалось отправить справку", "error", err)
	}
}

// handleGenerate сценарий генерации: валидация → заглушка → запрос → разрешение.
// Каждый путь заканчивается ровно одним видимым пользователю итогом.
func (b *Bot) handleGenerate(ctx context.Context, msg *tgbotapi.Message) {
	// Промпт — хвост команды, токены склеиваются одиночными пробелами
	prompt := strings.Join(strings.Fields(msg.CommandArguments()), " ")
	if prompt == "" {
		b.reply(msg.Chat.ID, usageText)
		return
	}

	chatID := msg.Chat.ID
	userName := ""
	if msg.From != nil {
		userName = msg.From.FirstName
	}
	b.logger.Infow("Запрос на генерацию изображения", "chat_id", chatID, "from", userName, "prompt", prompt)

	placeholder, err := b.api.Send(tgbotapi.NewMessage(chatID, processingText))
	if err != nil {
		b.logger.Errorw("Не удалось отправить сообщение-заглушку", "chat_id", chatID, "error", err)
		return
	}

	res := b.relay.Generate(ctx, prompt)

	switch res.Kind {
	case relay.KindImage:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  fmt.Sprintf("generated_image_%d.png", chatID),
			Bytes: res.ImageBytes,
		})
		photo.Caption = fmt.Sprintf("Here's the image for: %q\n\nGenerated by AI.", prompt)
		if _, err := b.api.Send(photo); err != nil {
			b.logger.Errorw("Не удалось отправить фото", "chat_id", chatID, "error", err)
			b.edit(chatID, placeholder.MessageID, failedText)
			return
		}
		// Результат доставлен, заглушка больше не нужна
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, placeholder.MessageID)); err != nil {
			b.logger.Warnw("Не удалось удалить сообщение-заглушку", "chat_id", chatID, "error", err)
		}
	case relay.KindNoImage:
		b.edit(chatID, placeholder.MessageID, noImageText)
	case relay.KindBlocked:
		b.edit(chatID, placeholder.MessageID, blockedText)
	case relay.KindStopped:
		b.edit(chatID, placeholder.MessageID, stoppedText)
	default:
		b.edit(chatID, placeholder.MessageID, failedText)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Errorw("Не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		b.logger.Errorw("Не удалось отредактировать сообщение-заглушку", "chat_id", chatID, "error", err)
	}
}
