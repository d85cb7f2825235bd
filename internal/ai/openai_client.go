package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// OpenAIClient альтернативный провайдер: генерация картинок через Images API (DALL-E).
type OpenAIClient struct {
	client       openai.Client
	model        openai.ImageModel
	promptPrefix string
	logger       *zap.SugaredLogger
}

func NewOpenAIClient(apiKey, promptPrefix string, logger *zap.SugaredLogger) *OpenAIClient {
	return &OpenAIClient{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		model:        openai.ImageModelDallE3,
		promptPrefix: promptPrefix,
		logger:       logger,
	}
}

// GenerateContent запрашивает одну картинку в base64 и приводит ответ
// к нейтральной форме с единственной image/png частью.
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string) (*Response, error) {
	full := withPrefix(c.promptPrefix, prompt)

	start := time.Now()
	c.logger.Infow("Запрос в OpenAI...", "model", c.model)
	img, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         full,
		Model:          c.model,
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	dur := time.Since(start)
	if err != nil {
		c.logger.Warnw("Ошибка ответа OpenAI", "duration", dur.String(), "error", err)
		return nil, classifyOpenAIError(err)
	}
	c.logger.Infow("Ответ OpenAI получен", "duration", dur.String())

	if len(img.Data) == 0 {
		// Пустой список — пусть интерпретатор сообщит об отсутствии картинки
		return &Response{}, nil
	}
	raw, err := base64.StdEncoding.DecodeString(img.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai decode image: %w", err)
	}
	return &Response{Parts: []Part{{MIMEType: "image/png", Data: raw}}}, nil
}

// classifyOpenAIError переводит отказ по политике контента в метку ErrBlocked.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Code == "content_policy_violation" {
		return fmt.Errorf("openai: %w: %v", ErrBlocked, err)
	}
	return fmt.Errorf("openai generate: %w", err)
}
