package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient адаптер Google Gemini. Один клиент на процесс, создаётся на старте.
type GeminiClient struct {
	client       *genai.Client
	model        string
	promptPrefix string
	logger       *zap.SugaredLogger
}

func NewGeminiClient(ctx context.Context, apiKey, model, promptPrefix string, logger *zap.SugaredLogger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiClient{
		client:       client,
		model:        model,
		promptPrefix: promptPrefix,
		logger:       logger,
	}, nil
}

// Close освобождает сетевые ресурсы клиента.
func (c *GeminiClient) Close() error { return c.client.Close() }

// GenerateContent выполняет один запрос генерации. Вызов блокирующий;
// вызывающая сторона сама уводит его из цикла диспетчеризации.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*Response, error) {
	model := c.client.GenerativeModel(c.model)
	full := withPrefix(c.promptPrefix, prompt)

	start := time.Now()
	c.logger.Infow("Запрос в Gemini...", "model", c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(full))
	dur := time.Since(start)
	if err != nil {
		c.logger.Warnw("Ошибка ответа Gemini", "duration", dur.String(), "error", err)
		return nil, classifyGeminiError(err)
	}
	c.logger.Infow("Ответ Gemini получен", "duration", dur.String())
	return convertGeminiResponse(resp), nil
}

// classifyGeminiError переводит ошибки SDK в метки ErrBlocked/ErrStopped.
// Отказ по промпту и обрыв кандидата SDK сообщает одним типом BlockedError,
// различаются они заполненными полями.
func classifyGeminiError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		if blocked.PromptFeedback != nil && blocked.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return fmt.Errorf("gemini: %w: %v", ErrBlocked, err)
		}
		return fmt.Errorf("gemini: %w: %v", ErrStopped, err)
	}
	return fmt.Errorf("gemini generate: %w", err)
}

// convertGeminiResponse переносит части первого кандидата в нейтральную форму.
func convertGeminiResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			out.Parts = append(out.Parts, Part{Text: string(p)})
		case genai.Blob:
			out.Parts = append(out.Parts, Part{MIMEType: p.MIMEType, Data: p.Data})
		}
	}
	return out
}
