package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cptzbik/halfmaraton/pkg/openai"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		cfg := openai.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for missing API key")
		}
	})

	t.Run("Defaults filled", func(t *testing.T) {
		cfg := openai.Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != openai.DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.BaseURL != openai.DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestChatCompletion(t *testing.T) {
	t.Run("Sends auth header and explicit temperature", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %q", got)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if _, ok := body["temperature"]; !ok {
				t.Errorf("temperature must be serialized even when zero")
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":"{\"wiek\": 30}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
		}))
		defer srv.Close()

		client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{
				{Role: "system", Content: "parse"},
				{Role: "user", Content: "Jestem mężczyzną, mam 30 lat"},
			},
			Temperature: 0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 {
			t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
		}
		if !strings.Contains(resp.Choices[0].Message.Content, "wiek") {
			t.Errorf("unexpected content: %q", resp.Choices[0].Message.Content)
		}
	})

	t.Run("API error surfaces message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		client, _ := openai.New(openai.Config{APIKey: "bad-key", BaseURL: srv.URL})
		_, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "Incorrect API key") {
			t.Fatalf("expected API error with message, got %v", err)
		}
	})
}
