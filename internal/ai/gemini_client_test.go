package ai

import (
	"errors"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestConvertGeminiResponseParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}},
				genai.Text("caption"),
			}},
		}},
	}

	got := convertGeminiResponse(resp)
	if len(got.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(got.Parts))
	}
	if got.Parts[0].MIMEType != "image/png" || len(got.Parts[0].Data) != 3 {
		t.Fatalf("unexpected first part: %+v", got.Parts[0])
	}
	if got.Parts[1].Text != "caption" {
		t.Fatalf("unexpected second part: %+v", got.Parts[1])
	}
}

func TestConvertGeminiResponseEmpty(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"candidate without content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := convertGeminiResponse(tc.resp); len(got.Parts) != 0 {
				t.Fatalf("expected empty response, got %d parts", len(got.Parts))
			}
		})
	}
}

func TestClassifyGeminiErrorBlockedPrompt(t *testing.T) {
	err := classifyGeminiError(&genai.BlockedError{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	})
	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("expected ErrBlocked, got %v", err)
	}
}

func TestClassifyGeminiErrorStoppedCandidate(t *testing.T) {
	err := classifyGeminiError(&genai.BlockedError{
		Candidate: &genai.Candidate{FinishReason: genai.FinishReasonSafety},
	})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestClassifyGeminiErrorUnclassified(t *testing.T) {
	err := classifyGeminiError(errors.New("connection reset"))
	if errors.Is(err, ErrBlocked) || errors.Is(err, ErrStopped) {
		t.Fatalf("plain error must stay unclassified: %v", err)
	}
	if err == nil {
		t.Fatal("expected wrapped error")
	}
}
