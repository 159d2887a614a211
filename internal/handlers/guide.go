package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/session"
)

type GuideHandler struct {
	Store *session.Store
}

// NewGuideHandler creates the guided-steps facet handler.
func NewGuideHandler(store *session.Store) *GuideHandler {
	return &GuideHandler{Store: store}
}

type KnowMoreResponse struct {
	Guide   assistant.GuideView `json:"guide"`
	Applied bool                `json:"applied"`
}

// Get returns the current step and the shared elaboration slot.
func (h *GuideHandler) Get(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.Guide())
}

// Next advances the step index, clamped at the last step.
func (h *GuideHandler) Next(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.NextStep())
}

// Previous retreats the step index, clamped at zero.
func (h *GuideHandler) Previous(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.PreviousStep())
}

// KnowMore asks for an elaboration of the current step.
func (h *GuideHandler) KnowMore(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	_, applied := sess.KnowMore(c.Request().Context())
	return c.JSON(http.StatusOK, KnowMoreResponse{Guide: sess.Guide(), Applied: applied})
}
