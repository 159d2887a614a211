package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/session"
)

type AudioHandler struct {
	Store *session.Store
}

// NewAudioHandler creates the audio stories handler.
func NewAudioHandler(store *session.Store) *AudioHandler {
	return &AudioHandler{Store: store}
}

type PlayRequest struct {
	StoryID int `json:"story_id" validate:"required"`
}

type EndedRequest struct {
	Src string `json:"src" validate:"required"`
}

type PlayResponse struct {
	Story    content.Story          `json:"story"`
	Playback assistant.PlaybackView `json:"playback"`
}

// Stories returns the story list for the session's locale.
func (h *AudioHandler) Stories(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]content.Story{"stories": sess.Stories()})
}

// Play starts a story, superseding any active playback handle.
func (h *AudioHandler) Play(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req PlayRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	story, err := sess.PlayStory(req.StoryID)
	if err != nil {
		if errors.Is(err, assistant.ErrUnknownStory) {
			return notFound(c, "story not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PlayResponse{Story: story, Playback: sess.Playback()})
}

// Pause pauses the active handle; a no-op when nothing is playing.
func (h *AudioHandler) Pause(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.PauseAudio())
}

// Resume resumes a paused handle; a no-op when already playing.
func (h *AudioHandler) Resume(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, sess.ResumeAudio())
}

// Ended handles the platform's end-of-playback notification.
func (h *AudioHandler) Ended(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req EndedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	return c.JSON(http.StatusOK, sess.AudioEnded(req.Src))
}
