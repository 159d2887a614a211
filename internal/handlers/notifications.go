package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/notifications"
	"example.com/dhansakhi/backend/internal/session"
)

type NotificationHandler struct {
	Store *session.Store
	Hub   *notifications.Hub
}

// NewNotificationHandler creates the SSE notification handler.
func NewNotificationHandler(store *session.Store, hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{Store: store, Hub: hub}
}

// Stream opens an SSE stream of the session's facet events.
func (h *NotificationHandler) Stream(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return serverError(c)
	}

	ch, unsubscribe := h.Hub.Subscribe(sess.ID)
	defer unsubscribe()

	_ = writeSSE(c, notifications.Event{Type: notifications.EventConnected, Data: map[string]string{"session_id": sess.ID.String()}})
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeSSE(c, event); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeSSE(c echo.Context, event notifications.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("event: " + event.Type + "\n")); err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
		return err
	}

	return nil
}
