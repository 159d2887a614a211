package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/session"
)

// lookupSession resolves the :id path parameter to a live session. When the
// session is nil the response has already been written.
func lookupSession(c echo.Context, store *session.Store) (*assistant.Session, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, badRequest(c, "invalid session id")
	}

	sess, ok := store.Get(id)
	if !ok {
		return nil, notFound(c, "session not found")
	}

	return sess, nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func unprocessable(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
