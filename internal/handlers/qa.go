package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/session"
)

type QAHandler struct {
	Store *session.Store
}

// NewQAHandler creates the question/answer facet handler.
func NewQAHandler(store *session.Store) *QAHandler {
	return &QAHandler{Store: store}
}

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Question string               `json:"question"`
	Answer   assistant.AnswerView `json:"answer"`
	// Applied is false when the submit was a no-op or its result was
	// superseded by a newer one.
	Applied bool `json:"applied"`
}

type VoiceStartResponse struct {
	Listening  bool   `json:"listening"`
	SpeechLang string `json:"speech_lang"`
}

type VoiceResultRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// Ask submits a question to the chat-completion collaborator. Empty or
// whitespace-only questions leave the answer state unchanged.
func (h *QAHandler) Ask(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req AskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	view, applied := sess.SubmitQuestion(c.Request().Context(), req.Question)
	return c.JSON(http.StatusOK, AskResponse{
		Question: sess.Question(),
		Answer:   view,
		Applied:  applied,
	})
}

// VoiceStart begins a one-shot voice capture and returns the recognizer
// language tag for the active locale.
func (h *QAHandler) VoiceStart(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	lang, err := sess.StartVoiceCapture()
	if err != nil {
		if errors.Is(err, assistant.ErrSpeechUnavailable) {
			return conflict(c, sess.Label(content.LabelSpeechUnavailable))
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, VoiceStartResponse{Listening: true, SpeechLang: lang})
}

// VoiceResult delivers the recognized transcript of the active capture.
func (h *QAHandler) VoiceResult(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req VoiceResultRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	if err := sess.VoiceResult(req.Transcript); err != nil {
		if errors.Is(err, assistant.ErrNotListening) {
			return conflict(c, "voice capture is not active")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"question": sess.Question()})
}

// VoiceEnd ends the capture whether or not a result arrived.
func (h *QAHandler) VoiceEnd(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	sess.EndVoiceCapture()
	return c.JSON(http.StatusOK, map[string]bool{"listening": false})
}
