package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/dhansakhi/backend/internal/ai"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/notifications"
)

// Options configure per-session behavior.
type Options struct {
	Locale content.Locale
	// StrictOrdering discards chat-completion results that were superseded by
	// a newer submit. The default preserves last-write-wins.
	StrictOrdering bool
	// SpeechEnabled reports whether a speech recognizer is available to the
	// deployment. When false, starting voice capture fails without touching
	// any state.
	SpeechEnabled bool
}

// Session owns all facet state of one page session. Every method serializes
// on the session mutex; the two chat-completion calls release it while the
// request is in flight so the session stays responsive.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	locale      content.Locale
	budget      Budget
	question    string
	answer      answerSlot
	elaboration answerSlot
	guide       guide
	playback    playback
	listening   bool
	lastSeen    time.Time

	catalog        *content.Catalog
	service        *ai.Service
	hub            *notifications.Hub
	logger         *slog.Logger
	strictOrdering bool
	speechEnabled  bool
}

// New creates a session with empty facets and the given locale.
func New(id uuid.UUID, catalog *content.Catalog, service *ai.Service, hub *notifications.Hub, logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		ID:             id,
		locale:         opts.Locale,
		catalog:        catalog,
		service:        service,
		hub:            hub,
		logger:         logger,
		strictOrdering: opts.StrictOrdering,
		speechEnabled:  opts.SpeechEnabled,
		lastSeen:       time.Now(),
	}
	s.answer.status = AnswerEmpty
	s.elaboration.status = AnswerEmpty
	s.guide.stepCount = catalog.StepCount()

	return s
}

type BudgetView struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

type SavingsView struct {
	Kind    SavingsKind `json:"kind"`
	Amount  string      `json:"amount,omitempty"`
	Message string      `json:"message"`
}

type GuideView struct {
	StepIndex   int          `json:"step_index"`
	Step        content.Step `json:"step"`
	Elaboration AnswerView   `json:"elaboration"`
}

type Snapshot struct {
	SessionID  string          `json:"session_id"`
	Locale     content.Locale  `json:"locale"`
	SpeechLang string          `json:"speech_lang"`
	Listening  bool            `json:"listening"`
	Question   string          `json:"question"`
	Answer     AnswerView      `json:"answer"`
	Guide      GuideView       `json:"guide"`
	Steps      []content.Step  `json:"steps"`
	Stories    []content.Story `json:"stories"`
	Playback   PlaybackView    `json:"playback"`
	Budget     BudgetView      `json:"budget"`
	Savings    SavingsView     `json:"savings"`
}

// Touch records activity for idle eviction.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// LastSeen returns the time of the session's most recent activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Locale returns the active locale.
func (s *Session) Locale() content.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Label returns the catalog literal for the active locale.
func (s *Session) Label(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Label(s.locale, key)
}

// SetLocale switches the display language. Values outside the two supported
// locales are rejected and leave everything untouched. Story list, labels and
// the speech language tag are re-derived atomically from the new locale.
func (s *Session) SetLocale(raw string) error {
	locale, err := content.ParseLocale(raw)
	if err != nil {
		return ErrInvalidLocale
	}

	s.mu.Lock()
	s.locale = locale
	stories := s.catalog.Stories(locale)
	s.mu.Unlock()

	s.publish(notifications.EventLocaleChanged, map[string]interface{}{
		"locale":  locale,
		"stories": stories,
	})
	return nil
}

// SetIncome stores the raw income string verbatim.
func (s *Session) SetIncome(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.SetIncome(raw)
}

// SetExpenses applies the budget entry rule; a rejected value is reported via
// ErrExpensesExceedIncome and the stored expenses are unchanged.
func (s *Session) SetExpenses(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.SetExpenses(raw)
}

// Budget returns the raw budget fields.
func (s *Session) Budget() BudgetView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BudgetView{Income: s.budget.Income, Expenses: s.budget.Expenses}
}

// Savings derives the savings result plus its locale-appropriate display text.
func (s *Session) Savings() SavingsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savingsLocked()
}

func (s *Session) savingsLocked() SavingsView {
	savings := s.budget.ComputeSavings()

	view := SavingsView{Kind: savings.Kind}
	switch savings.Kind {
	case SavingsPositive:
		view.Amount = savings.Amount.String()
		view.Message = fmt.Sprintf(s.catalog.Label(s.locale, content.LabelSavingsPositive), view.Amount)
	case SavingsWarning:
		view.Message = s.catalog.Label(s.locale, content.LabelSavingsWarning)
	default:
		view.Message = s.catalog.Label(s.locale, content.LabelSavingsPrompt)
	}

	return view
}

// Question returns the current question text.
func (s *Session) Question() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question
}

// Answer returns the current answer state.
func (s *Session) Answer() AnswerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answer.view()
}

// SubmitQuestion runs the ask lifecycle: empty or whitespace-only text is a
// no-op; otherwise the answer slot transitions to loading, the question is
// sent as a single user-role message, and the slot ends ready or error. An
// in-flight call is never canceled; overlap resolution follows the session's
// ordering mode. The returned flag reports whether this submit's result was
// applied (false for no-ops and superseded results).
func (s *Session) SubmitQuestion(ctx context.Context, text string) (AnswerView, bool) {
	if strings.TrimSpace(text) == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.answer.view(), false
	}

	s.mu.Lock()
	s.question = text
	generation := s.answer.beginLoad()
	loadingView := s.answer.view()
	s.mu.Unlock()

	s.publish(notifications.EventAnswerLoading, loadingView)

	answer, raw, err := s.service.Answer(ctx, text)

	s.mu.Lock()
	var applied bool
	if err != nil {
		applied = s.answer.fail(generation, s.catalog.Label(s.locale, content.LabelAnswerError), s.strictOrdering)
	} else {
		applied = s.answer.complete(generation, answer, s.strictOrdering)
	}
	view := s.answer.view()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("chat completion failed",
			slog.String("session_id", s.ID.String()),
			slog.String("error", err.Error()),
			slog.String("detail", truncate(string(raw), 512)),
		)
	}

	if applied {
		if err != nil {
			s.publish(notifications.EventAnswerError, view)
		} else {
			s.publish(notifications.EventAnswerReady, view)
		}
	}

	return view, applied
}

// StartVoiceCapture begins a one-shot capture and returns the recognizer
// language tag for the active locale. Re-triggering while listening is a
// no-op. When no recognizer is available the call fails without any state
// change.
func (s *Session) StartVoiceCapture() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.speechEnabled {
		return "", ErrSpeechUnavailable
	}

	lang := s.catalog.SpeechLang(s.locale)
	if s.listening {
		return lang, nil
	}

	s.listening = true
	return lang, nil
}

// VoiceResult accepts the first recognized transcript of the active capture,
// stores it as the question text and ends the capture.
func (s *Session) VoiceResult(transcript string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.listening {
		return ErrNotListening
	}

	s.question = transcript
	s.listening = false
	return nil
}

// EndVoiceCapture ends the capture whether or not a result arrived.
func (s *Session) EndVoiceCapture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listening = false
}

// Listening reports whether a voice capture is active.
func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

// Guide returns the current step and the shared elaboration slot.
func (s *Session) Guide() GuideView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guideLocked()
}

func (s *Session) guideLocked() GuideView {
	return GuideView{
		StepIndex:   s.guide.index,
		Step:        s.catalog.Steps(s.locale)[s.guide.index],
		Elaboration: s.elaboration.view(),
	}
}

// NextStep advances the step index, clamped at the last step. The shared
// elaboration slot is left as is.
func (s *Session) NextStep() GuideView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guide.next()
	return s.guideLocked()
}

// PreviousStep retreats the step index, clamped at zero.
func (s *Session) PreviousStep() GuideView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guide.previous()
	return s.guideLocked()
}

// KnowMore asks the chat-completion collaborator to elaborate on the current
// step, using its description as the sole message. The elaboration slot is
// shared across all steps; the same overlap rules as SubmitQuestion apply.
func (s *Session) KnowMore(ctx context.Context) (AnswerView, bool) {
	s.mu.Lock()
	description := s.catalog.Steps(s.locale)[s.guide.index].Description
	generation := s.elaboration.beginLoad()
	loadingView := s.elaboration.view()
	s.mu.Unlock()

	s.publish(notifications.EventElaborationLoading, loadingView)

	answer, raw, err := s.service.Answer(ctx, description)

	s.mu.Lock()
	var applied bool
	if err != nil {
		applied = s.elaboration.fail(generation, s.catalog.Label(s.locale, content.LabelAnswerError), s.strictOrdering)
	} else {
		applied = s.elaboration.complete(generation, answer, s.strictOrdering)
	}
	view := s.elaboration.view()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("step elaboration failed",
			slog.String("session_id", s.ID.String()),
			slog.String("error", err.Error()),
			slog.String("detail", truncate(string(raw), 512)),
		)
	}

	if applied {
		if err != nil {
			s.publish(notifications.EventElaborationError, view)
		} else {
			s.publish(notifications.EventElaborationReady, view)
		}
	}

	return view, applied
}

// Stories returns the audio story list for the active locale.
func (s *Session) Stories() []content.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Stories(s.locale)
}

// PlayStory starts playback of the given story, superseding any active
// handle.
func (s *Session) PlayStory(id int) (content.Story, error) {
	s.mu.Lock()
	story, ok := s.catalog.Story(s.locale, id)
	if !ok {
		s.mu.Unlock()
		return content.Story{}, ErrUnknownStory
	}

	s.playback.play(story.Src)
	view := s.playback.view()
	s.mu.Unlock()

	s.publish(notifications.EventPlaybackChanged, view)
	return story, nil
}

// PauseAudio pauses the active handle; a no-op when nothing is playing.
func (s *Session) PauseAudio() PlaybackView {
	s.mu.Lock()
	changed := s.playback.pause()
	view := s.playback.view()
	s.mu.Unlock()

	if changed {
		s.publish(notifications.EventPlaybackChanged, view)
	}
	return view
}

// ResumeAudio resumes a paused handle; a no-op when already playing or when
// no handle exists.
func (s *Session) ResumeAudio() PlaybackView {
	s.mu.Lock()
	changed := s.playback.resume()
	view := s.playback.view()
	s.mu.Unlock()

	if changed {
		s.publish(notifications.EventPlaybackChanged, view)
	}
	return view
}

// AudioEnded handles the end-of-playback notification for a source. End
// events from superseded handles are ignored.
func (s *Session) AudioEnded(src string) PlaybackView {
	s.mu.Lock()
	changed := s.playback.ended(src)
	view := s.playback.view()
	s.mu.Unlock()

	if changed {
		s.publish(notifications.EventPlaybackChanged, view)
	}
	return view
}

// Playback returns the current playback state.
func (s *Session) Playback() PlaybackView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.view()
}

// Snapshot returns the full session state in one view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		SessionID:  s.ID.String(),
		Locale:     s.locale,
		SpeechLang: s.catalog.SpeechLang(s.locale),
		Listening:  s.listening,
		Question:   s.question,
		Answer:     s.answer.view(),
		Guide:      s.guideLocked(),
		Steps:      s.catalog.Steps(s.locale),
		Stories:    s.catalog.Stories(s.locale),
		Playback:   s.playback.view(),
		Budget:     BudgetView{Income: s.budget.Income, Expenses: s.budget.Expenses},
		Savings:    s.savingsLocked(),
	}
}

func (s *Session) publish(eventType string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(s.ID, notifications.Event{Type: eventType, Data: data})
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
