package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-solutions-go/internal/config"
)

func TestOpenAIComplete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(config.LLMConfig{BaseURL: srv.URL + "/", APIKey: "key", Model: "m1"}, srv.Client())
	temp, maxTokens := 0.7, 1024
	out, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "ctx"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleModel, Content: "hello"},
		{Role: RoleUser, Content: "services?"},
	}, &GenerationParams{Temperature: &temp, MaxTokens: &maxTokens})
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if out != "Hello there" {
		t.Fatalf("unexpected reply %q", out)
	}
	if got.Model != "m1" || got.Stream {
		t.Errorf("unexpected request header fields: %+v", got)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 || got.MaxTokens == nil || *got.MaxTokens != 1024 {
		t.Errorf("generation params not sent: %+v", got)
	}
	if len(got.Messages) != 4 || got.Messages[2].Role != "assistant" {
		t.Errorf("model role not mapped to assistant: %+v", got.Messages)
	}
}

func TestOpenAICompleteUsesConfigParams(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	cfg := config.LLMConfig{BaseURL: srv.URL, Generation: config.LLMGenerationConfig{Temperature: 0.2}}
	if _, err := NewOpenAIClient(cfg, nil).Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, nil); err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got.Temperature == nil || *got.Temperature != 0.2 {
		t.Errorf("expected temperature from config, got %+v", got.Temperature)
	}
	if got.MaxTokens != nil {
		t.Errorf("expected zero max tokens to be omitted")
	}
}

func TestOpenAICompleteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		empty  bool
	}{
		{"non-200", http.StatusInternalServerError, `{"error":"boom"}`, false},
		{"no choices", http.StatusOK, `{"choices":[]}`, true},
		{"blank content", http.StatusOK, `{"choices":[{"message":{"content":"  "}}]}`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewOpenAIClient(config.LLMConfig{BaseURL: srv.URL}, nil).
				Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrEmptyResponse) != tc.empty {
				t.Errorf("ErrEmptyResponse match = %v, want %v (err: %v)", !tc.empty, tc.empty, err)
			}
		})
	}
}

func TestOpenAICompleteHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOpenAIClient(config.LLMConfig{BaseURL: srv.URL}, nil).
		Complete(ctx, []Message{{Role: RoleUser, Content: "x"}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

var (
	_ Client = (*openAIClient)(nil)
	_ Client = (*geminiClient)(nil)
)

func TestOpenAICloseLeavesSharedClientUsable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"still here"}}]}`))
	}))
	defer srv.Close()

	shared := srv.Client()
	first := NewOpenAIClient(config.LLMConfig{BaseURL: srv.URL, Model: "m"}, shared)
	if err := first.Close(); err != nil {
		t.Fatalf("Close err: %v", err)
	}
	out, err := NewOpenAIClient(config.LLMConfig{BaseURL: srv.URL, Model: "m"}, shared).
		Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, nil)
	if err != nil || out != "still here" {
		t.Fatalf("shared http client unusable after Close: %q %v", out, err)
	}
}
