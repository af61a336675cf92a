package quiz

import "errors"

// Usage errors: the caller violated a state-machine precondition. They are
// surfaced synchronously, never retried, and indicate a caller bug.
var (
	// ErrEmptySession is returned when starting a session with no questions.
	ErrEmptySession = errors.New("session has no questions")

	// ErrInvalidChoice is returned when a selected choice index is out of
	// range for the current question.
	ErrInvalidChoice = errors.New("choice index out of range")

	// ErrNoSelection is returned when submitting before any choice was made.
	ErrNoSelection = errors.New("no answer selected")

	// ErrAlreadySubmitted is returned when the current question was already
	// submitted or skipped. The earlier tallies are unaffected.
	ErrAlreadySubmitted = errors.New("answer already submitted")

	// ErrQuestionPending is returned by Advance when the current question has
	// been neither submitted nor skipped.
	ErrQuestionPending = errors.New("current question not yet submitted or skipped")

	// ErrSessionComplete is returned for any transition attempted after the
	// session reached its terminal state.
	ErrSessionComplete = errors.New("session already complete")

	// ErrSessionNotComplete is returned by Result before the session ends.
	ErrSessionNotComplete = errors.New("session not complete")
)
