package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mwalali_homes/internal/domain"
)

const SystemPrompt = "You are the Mwalali Homes Assistant. You represent a professional real estate firm in Kilimani, Nairobi. " +
	"You have two main luxury projects for sale: 'Brookside Oak' in Westlands and 'Oak Breeze' in Kilimani. " +
	"Be helpful, professional, and encourage users to book a viewing or contact the sales team at +254721 615 737. " +
	"Currency is KES. Speak highly of the investment potential."

const (
	Greeting           = "Hello! I am your AI real estate assistant. How can I help you find your dream home today?"
	replyUnprocessable = "I'm sorry, I couldn't process that request."
	replyUnavailable   = "I'm having trouble connecting to the server right now. Please try again later."
)

var ErrEmptyMessage = errors.New("message must not be empty")

type ChatService struct {
	ai           domain.Assistant
	historyLimit int
	budget       time.Duration
}

func NewChatService(ai domain.Assistant, historyLimit int) *ChatService {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &ChatService{ai: ai, historyLimit: historyLimit, budget: DefaultAssistantTimeout}
}

// WithAssistantTimeout overrides how long Reply waits for the model.
func (s *ChatService) WithAssistantTimeout(d time.Duration) *ChatService {
	if d > 0 {
		s.budget = d
	}
	return s
}

func (s *ChatService) Greeting() domain.ChatMessage {
	return domain.ChatMessage{Role: domain.RoleModel, Text: Greeting}
}

// Reply answers message in the context of history. Only a blank message is an
// error; assistant failures come back as a model turn flagged IsError.
func (s *ChatService) Reply(ctx context.Context, history []domain.ChatMessage, message string) (domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}
	if s.ai == nil {
		log.Error().Err(errAssistantMissing).Msg("chat failed")
		return domain.ChatMessage{Role: domain.RoleModel, Text: replyUnavailable, IsError: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()
	txt, err := s.ai.Chat(ctx, SystemPrompt, normalizeHistory(history, s.historyLimit), message)
	if err != nil {
		log.Error().Err(err).Int("history", len(history)).Msg("chat failed")
		return domain.ChatMessage{Role: domain.RoleModel, Text: replyUnavailable, IsError: true}, nil
	}
	if strings.TrimSpace(txt) == "" {
		txt = replyUnprocessable
	}
	return domain.ChatMessage{Role: domain.RoleModel, Text: txt}, nil
}

// normalizeHistory drops error and blank turns, keeps the last limit turns and
// makes sure the conversation opens with a user turn.
func normalizeHistory(in []domain.ChatMessage, limit int) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(in))
	for _, m := range in {
		if m.IsError || strings.TrimSpace(m.Text) == "" {
			continue
		}
		if m.Role != domain.RoleUser && m.Role != domain.RoleModel {
			continue
		}
		out = append(out, m)
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	for len(out) > 0 && out[0].Role != domain.RoleUser {
		out = out[1:]
	}
	return out
}
