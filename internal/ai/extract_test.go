package ai

import (
	"bytes"
	"testing"
)

func TestExtractImagePNGFirstPart(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	resp := &Response{Parts: []Part{{MIMEType: "image/png", Data: payload}}}

	data, mime, ok := ExtractImage(resp)
	if !ok {
		t.Fatal("expected image to be extracted")
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("extracted bytes differ: got %v want %v", data, payload)
	}
	if mime != "image/png" {
		t.Fatalf("unexpected mime: %s", mime)
	}
}

func TestExtractImageAbsent(t *testing.T) {
	cases := []struct {
		name string
		resp *Response
	}{
		{"nil response", nil},
		{"no parts", &Response{}},
		{"text first part", &Response{Parts: []Part{{Text: "here is your image"}}}},
		{"non-image mime", &Response{Parts: []Part{{MIMEType: "audio/mp3", Data: []byte{1, 2}}}}},
		{"image mime without data", &Response{Parts: []Part{{MIMEType: "image/png"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := ExtractImage(tc.resp); ok {
				t.Fatal("expected absent result")
			}
		})
	}
}

func TestWithPrefix(t *testing.T) {
	if got := withPrefix("Generate an image depicting:", "a cat"); got != "Generate an image depicting: a cat" {
		t.Fatalf("unexpected prompt: %q", got)
	}
	if got := withPrefix("  ", "a cat"); got != "a cat" {
		t.Fatalf("blank prefix must leave prompt untouched: %q", got)
	}
}
