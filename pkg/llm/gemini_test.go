package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestToGeminiContents(t *testing.T) {
	system, history, last, err := toGeminiContents([]Message{
		{Role: RoleSystem, Content: "Company Information"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleModel, Content: "hello"},
		{Role: RoleUser, Content: "what do you offer?"},
	})
	if err != nil {
		t.Fatalf("toGeminiContents err: %v", err)
	}
	if system != "Company Information" {
		t.Errorf("unexpected system text %q", system)
	}
	if last != "what do you offer?" {
		t.Errorf("unexpected last message %q", last)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "model" {
		t.Errorf("unexpected roles %q, %q", history[0].Role, history[1].Role)
	}
	if history[1].Parts[0] != genai.Text("hello") {
		t.Errorf("unexpected part %v", history[1].Parts[0])
	}
}

func TestToGeminiContentsRequiresTrailingUser(t *testing.T) {
	if _, _, _, err := toGeminiContents(nil); err == nil {
		t.Error("expected error for empty prompt")
	}
	if _, _, _, err := toGeminiContents([]Message{{Role: RoleModel, Content: "x"}}); err == nil {
		t.Error("expected error when last entry is not a user message")
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("world")}}},
		{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
	}}
	if got := extractText(resp); got != "Hello world" {
		t.Errorf("unexpected text %q", got)
	}
	if got := extractText(nil); got != "" {
		t.Errorf("expected empty text for nil response, got %q", got)
	}
}
