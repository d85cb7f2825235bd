package ai

import (
	"context"
	"fmt"
	"strings"
)

// Client интерфейс провайдера генерации. Все реализации должны быть взаимозаменяемыми.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (*Response, error)
}

// Part один фрагмент ответа провайдера: либо текст, либо бинарные данные с MIME-типом.
type Part struct {
	MIMEType string
	Data     []byte
	Text     string
}

// Response результат одной генерации. Форма содержимого провайдером не гарантируется:
// внутри может быть текст, картинка, отказ или вообще ничего.
type Response struct {
	Parts []Part
}

// withPrefix добавляет фиксированную инструкцию перед промптом пользователя.
func withPrefix(prefix, prompt string) string {
	if p := strings.TrimSpace(prefix); p != "" {
		return fmt.Sprintf("%s %s", p, prompt)
	}
	return prompt
}
