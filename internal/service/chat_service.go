package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/llm"
	"ai-solutions-go/pkg/log"
)

// ChatService answers one chatbot turn at a time. The conversation lives on the client.
type ChatService interface {
	SubmitChatTurn(ctx context.Context, req model.ChatTurnRequest) (*model.ChatTurnResponse, error)
}

type chatService struct {
	assembler *ContextAssembler
	llmClient llm.Client
	llmCfg    config.LLMConfig
	instr     string
}

// NewChatService creates a ChatService grounded by assembler and answered by llmClient.
func NewChatService(assembler *ContextAssembler, llmClient llm.Client, llmCfg config.LLMConfig, assistantCfg config.AssistantConfig) ChatService {
	return &chatService{
		assembler: assembler,
		llmClient: llmClient,
		llmCfg:    llmCfg,
		instr:     assistantCfg.Instruction,
	}
}

// SubmitChatTurn validates the message, grounds the model with the current site content and
// returns its reply. Failures are returned as-is; the transport picks the fallback text.
func (s *chatService) SubmitChatTurn(ctx context.Context, req model.ChatTurnRequest) (*model.ChatTurnResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message must not be empty", ErrInvalidMessage)
	}
	if err := validateHistory(req.History); err != nil {
		return nil, err
	}

	contextText, err := s.assembler.Build(ctx)
	if err != nil {
		log.Error("failed to assemble chatbot context", err)
		return nil, err
	}

	messages := s.composeMessages(contextText+" "+s.instr, normalizeHistory(req.History), req.Message)
	log.Debugw("prompt composed", "messages", len(messages), "contextChars", len(contextText))

	callCtx, cancel := context.WithTimeout(ctx, s.llmCfg.Timeout())
	defer cancel()

	reply, err := s.llmClient.Complete(callCtx, messages, llm.ParamsFromConfig(s.llmCfg.Generation))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			log.Warnw("model call timed out", "timeout", s.llmCfg.Timeout().String())
			return nil, fmt.Errorf("%w: %v", ErrModelTimeout, err)
		}
		log.Error("model call failed", err)
		return nil, fmt.Errorf("%w: %v", ErrModelCall, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("%w: %v", ErrModelCall, llm.ErrEmptyResponse)
	}

	log.Infow("chat turn answered", "history", len(req.History), "replyChars", len(reply))
	return &model.ChatTurnResponse{Response: reply}, nil
}

// validateHistory rejects entries whose role is neither user nor model, so the composed prompt
// keeps its single leading system entry whatever the transport.
func validateHistory(history []model.ChatMessage) error {
	for i, m := range history {
		if m.Role != model.RoleUser && m.Role != model.RoleModel {
			return fmt.Errorf("%w: history[%d] has role %q", ErrInvalidMessage, i, m.Role)
		}
	}
	return nil
}

// normalizeHistory drops the first entry when it was not written by the user.
func normalizeHistory(history []model.ChatMessage) []model.ChatMessage {
	if len(history) > 0 && history[0].Role != model.RoleUser {
		return history[1:]
	}
	return history
}

func (s *chatService) composeMessages(systemMsg string, history []model.ChatMessage, userInput string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: systemMsg})
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userInput})
	return msgs
}
