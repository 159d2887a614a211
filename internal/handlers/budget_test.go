package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/ai"
	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/session"
)

func newTestStore(t *testing.T) (*session.Store, *assistant.Session) {
	t.Helper()

	catalog, err := content.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	store := session.NewStore(time.Minute, nil)
	sess := assistant.New(uuid.New(), catalog, ai.NewService(nil), nil, nil, assistant.Options{Locale: content.LocaleEnglish})
	store.Add(sess)

	return store, sess
}

func jsonRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// TestSetExpensesRejected checks the 422 response and untouched state when
// expenses exceed income.
func TestSetExpensesRejected(t *testing.T) {
	store, sess := newTestStore(t)
	sess.SetIncome("1000")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, `{"expenses":"1500"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())

	if err := NewBudgetHandler(store).SetExpenses(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your expenses exceed your income.") {
		t.Fatalf("expected localized warning, got %s", rec.Body.String())
	}
	if sess.Budget().Expenses != "" {
		t.Fatalf("expected stored expenses unchanged, got %q", sess.Budget().Expenses)
	}
}

// TestSetExpensesAccepted checks the happy path and derived savings.
func TestSetExpensesAccepted(t *testing.T) {
	store, sess := newTestStore(t)
	sess.SetIncome("5000")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, `{"expenses":"3000"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID.String())

	if err := NewBudgetHandler(store).SetExpenses(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"amount":"2000"`) {
		t.Fatalf("expected savings amount 2000, got %s", rec.Body.String())
	}
}

// TestLookupSessionUnknown checks the 404 path shared by all facet handlers.
func TestLookupSessionUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodGet, ``), rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := NewBudgetHandler(store).Savings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
