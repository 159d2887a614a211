package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// TestAskEmptyQuestion checks that an empty submit reports applied=false and
// leaves the answer state empty.
func TestAskEmptyQuestion(t *testing.T) {
	store, sess := newTestStore(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"question":"   "}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())

	if err := NewQAHandler(store).Ask(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"applied":false`) {
		t.Fatalf("expected applied=false, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"empty"`) {
		t.Fatalf("expected empty answer status, got %s", rec.Body.String())
	}
}

// TestVoiceStartUnavailable checks the capability-unavailable notice.
func TestVoiceStartUnavailable(t *testing.T) {
	store, sess := newTestStore(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, ``), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())

	if err := NewQAHandler(store).VoiceStart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if sess.Listening() {
		t.Fatal("expected no state change")
	}
}
