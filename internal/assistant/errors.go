package assistant

import "errors"

var (
	ErrInvalidLocale        = errors.New("invalid locale")
	ErrExpensesExceedIncome = errors.New("expenses exceed income")
	ErrEmptyQuestion        = errors.New("question is empty")
	ErrSpeechUnavailable    = errors.New("speech recognition is unavailable")
	ErrNotListening         = errors.New("voice capture is not active")
	ErrUnknownStory         = errors.New("unknown audio story")
)
