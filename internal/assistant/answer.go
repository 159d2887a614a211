package assistant

type AnswerStatus string

const (
	AnswerEmpty   AnswerStatus = "empty"
	AnswerLoading AnswerStatus = "loading"
	AnswerReady   AnswerStatus = "ready"
	AnswerError   AnswerStatus = "error"
)

// answerSlot is the tagged answer state of one ask-the-assistant surface.
// Every submit bumps the generation; under strict ordering a completion
// carrying a stale generation is discarded instead of overwriting the state.
type answerSlot struct {
	status     AnswerStatus
	text       string
	message    string
	generation uint64
}

// AnswerView is the externally visible form of an answer slot.
type AnswerView struct {
	Status  AnswerStatus `json:"status"`
	Text    string       `json:"text,omitempty"`
	Message string       `json:"message,omitempty"`
}

func (s *answerSlot) beginLoad() uint64 {
	s.generation++
	s.status = AnswerLoading
	s.text = ""
	s.message = ""
	return s.generation
}

// complete applies a successful result. With strict ordering enabled, a result
// from a superseded submit is dropped; otherwise last write wins.
func (s *answerSlot) complete(generation uint64, text string, strict bool) bool {
	if strict && generation != s.generation {
		return false
	}

	s.status = AnswerReady
	s.text = text
	s.message = ""
	return true
}

// fail applies a failed result under the same ordering rule as complete.
func (s *answerSlot) fail(generation uint64, message string, strict bool) bool {
	if strict && generation != s.generation {
		return false
	}

	s.status = AnswerError
	s.text = ""
	s.message = message
	return true
}

func (s *answerSlot) view() AnswerView {
	return AnswerView{Status: s.status, Text: s.text, Message: s.message}
}
