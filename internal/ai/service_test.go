package ai

import (
	"context"
	"errors"
	"testing"
)

type fakeClient struct {
	content string
	err     error
}

func (f *fakeClient) Chat(_ context.Context, _ []Message) (string, []byte, error) {
	return f.content, []byte(`{}`), f.err
}

// TestServiceAnswer checks the plain success path.
func TestServiceAnswer(t *testing.T) {
	service := NewService(&fakeClient{content: "start with a budget"})

	answer, _, err := service.Answer(context.Background(), "where do I start?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if answer != "start with a budget" {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

// TestServiceAnswerFallback checks substitution when content is blank.
func TestServiceAnswerFallback(t *testing.T) {
	service := NewService(&fakeClient{content: "   "})

	answer, _, err := service.Answer(context.Background(), "where do I start?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if answer != FallbackAnswer {
		t.Fatalf("expected fallback answer, got %q", answer)
	}
}

// TestServiceAnswerError checks that client errors propagate.
func TestServiceAnswerError(t *testing.T) {
	service := NewService(&fakeClient{err: errors.New("transport down")})

	if _, _, err := service.Answer(context.Background(), "where do I start?"); err == nil {
		t.Fatal("expected error")
	}
}
