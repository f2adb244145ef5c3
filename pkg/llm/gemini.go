package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-solutions-go/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	cfg    config.LLMConfig
}

// NewGeminiClient creates a client for the Gemini API.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiClient{client: client, cfg: cfg}, nil
}

// Complete sends the system entries as the system instruction, the middle entries as chat history,
// and the final user entry as the new message.
func (c *geminiClient) Complete(ctx context.Context, messages []Message, gen *GenerationParams) (string, error) {
	system, history, last, err := toGeminiContents(messages)
	if err != nil {
		return "", err
	}
	if gen == nil {
		gen = ParamsFromConfig(c.cfg.Generation)
	}

	m := c.client.GenerativeModel(c.cfg.Model)
	if gen.Temperature != nil {
		m.SetTemperature(float32(*gen.Temperature))
	}
	if gen.TopP != nil {
		m.SetTopP(float32(*gen.TopP))
	}
	if gen.MaxTokens != nil {
		m.SetMaxOutputTokens(int32(*gen.MaxTokens))
	}
	if system != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	cs := m.StartChat()
	cs.History = history
	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}

// toGeminiContents splits a prompt into system text, prior turns and the final user message.
func toGeminiContents(messages []Message) (string, []*genai.Content, string, error) {
	if len(messages) == 0 || messages[len(messages)-1].Role != RoleUser {
		return "", nil, "", errors.New("prompt must end with a user message")
	}

	var system []string
	var history []*genai.Content
	for _, m := range messages[:len(messages)-1] {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleModel, "assistant":
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}
	return strings.Join(system, "\n"), history, messages[len(messages)-1].Content, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		break
	}
	return sb.String()
}
