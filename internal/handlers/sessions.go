package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/ai"
	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/notifications"
	"example.com/dhansakhi/backend/internal/session"
)

type SessionHandler struct {
	Store    *session.Store
	Catalog  *content.Catalog
	Service  *ai.Service
	Hub      *notifications.Hub
	Logger   *slog.Logger
	Defaults assistant.Options
}

// NewSessionHandler creates the session lifecycle handler.
func NewSessionHandler(store *session.Store, catalog *content.Catalog, service *ai.Service, hub *notifications.Hub, logger *slog.Logger, defaults assistant.Options) *SessionHandler {
	return &SessionHandler{
		Store:    store,
		Catalog:  catalog,
		Service:  service,
		Hub:      hub,
		Logger:   logger,
		Defaults: defaults,
	}
}

type CreateSessionRequest struct {
	Locale string `json:"locale"`
}

type SetLocaleRequest struct {
	Locale string `json:"locale" validate:"required"`
}

// Create starts a new page session with the default locale, or the requested
// one when provided.
func (h *SessionHandler) Create(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	opts := h.Defaults
	if req.Locale != "" {
		locale, err := content.ParseLocale(req.Locale)
		if err != nil {
			return badRequest(c, "unsupported locale")
		}
		opts.Locale = locale
	}

	sess := assistant.New(uuid.New(), h.Catalog, h.Service, h.Hub, h.Logger, opts)
	h.Store.Add(sess)

	return c.JSON(http.StatusCreated, sess.Snapshot())
}

// Get returns the full session snapshot.
func (h *SessionHandler) Get(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.Snapshot())
}

// SetLocale switches the session's display language.
func (h *SessionHandler) SetLocale(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req SetLocaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	if err := sess.SetLocale(req.Locale); err != nil {
		return badRequest(c, "unsupported locale")
	}

	return c.JSON(http.StatusOK, sess.Snapshot())
}
