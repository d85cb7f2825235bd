package ai

import (
	"bytes"
	"context"
	"image"
	"image/png"
)

// StubClient заглушка, которая не делает реальных запросов:
// всегда возвращает одну часть с PNG 1x1.
type StubClient struct{}

func NewStubClient() *StubClient { return &StubClient{} }

func (c *StubClient) GenerateContent(_ context.Context, _ string) (*Response, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		return nil, err
	}
	return &Response{Parts: []Part{{MIMEType: "image/png", Data: buf.Bytes()}}}, nil
}
