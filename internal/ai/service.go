package ai

import (
	"context"
	"strings"
)

// FallbackAnswer is returned when a successful response carries no usable content.
const FallbackAnswer = "No answer available."

type Service struct {
	client Client
}

// NewService creates the service around a chat-completion client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Answer sends a single user-role message and returns the answer text plus the
// raw API response. A well-formed response without content yields FallbackAnswer.
func (s *Service) Answer(ctx context.Context, text string) (string, []byte, error) {
	messages := []Message{
		{Role: "user", Content: text},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", raw, err
	}

	if strings.TrimSpace(content) == "" {
		return FallbackAnswer, raw, nil
	}

	return content, raw, nil
}
