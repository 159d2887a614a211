package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestGroqClientChat checks extraction of the first choice's content.
func TestGroqClientChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		response := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "save 20% of income"}},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewGroqClient("test-key", server.URL, "llama-3.3-70b-versatile", 5*time.Second)

	content, raw, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "how do I save?"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if content != "save 20% of income" {
		t.Fatalf("unexpected content: %q", content)
	}
	if len(raw) == 0 {
		t.Fatal("expected raw response body")
	}
}

// TestGroqClientChatServerError checks that non-2xx statuses surface as errors.
func TestGroqClientChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGroqClient("test-key", server.URL, "llama-3.3-70b-versatile", 5*time.Second)

	if _, _, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for 500 status")
	}
}

// TestGroqClientChatMissingChoices checks the malformed-response soft path.
func TestGroqClientChatMissingChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", server.URL, "llama-3.3-70b-versatile", 5*time.Second)

	content, _, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if content != "" {
		t.Fatalf("expected empty content, got %q", content)
	}
}

// TestGroqClientChatMissingKey checks that calls are rejected without a key.
func TestGroqClientChatMissingKey(t *testing.T) {
	client := NewGroqClient("", "https://api.groq.com/openai/v1", "llama-3.3-70b-versatile", 5*time.Second)

	if _, _, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
