// Package session holds the application's screen-sequencing state
// machine: Welcome → Loading → Quiz → Results, with Error reachable
// from any generation failure and recoverable by explicit user action.
// The session is fully transient. It is rebuilt on every program start
// and never persisted.
package session

import (
	"strings"

	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
)

// State is the current screen of the session.
type State int

const (
	StateWelcome State = iota
	StateLoading
	StateQuiz
	StateResults
	StateError
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateLoading:
		return "loading"
	case StateQuiz:
		return "quiz"
	case StateResults:
		return "results"
	case StateError:
		return "error"
	}
	return "unknown"
}

// GenericFailureMessage is shown when a generation failure carries no
// message of its own.
const GenericFailureMessage = "We encountered an issue crafting your unique exam. Please try again."

// AuthFailureMessage replaces any authentication-looking failure text.
// Applied here as well as in the generation client: upstream wording is
// inconsistent, so the state machine normalizes once more.
const AuthFailureMessage = "Authentication Failed: Please re-select your Google API Key."

// Session is the state machine for one application run. All mutation
// goes through the transition methods; the UI layer reads the exported
// fields. Single event loop, no locking.
type Session struct {
	State   State
	Quiz    *quiz.QuizData
	Answers quiz.Answers
	ErrMsg  string

	// Config of the in-flight or most recent generation request.
	Config quiz.Config

	// gen identifies the current generation attempt. A response
	// carrying a stale token is discarded instead of resurrecting an
	// abandoned quiz.
	gen int
}

// New creates a session in the Welcome state.
func New() *Session {
	return &Session{
		State:   StateWelcome,
		Answers: quiz.Answers{},
	}
}

// StartQuiz moves Welcome or Error into Loading, clearing any prior
// error and answers, and returns the generation token the eventual
// FinishGeneration call must present. Calls from other states are
// rejected with -1 (the UI disables input while Loading).
func (s *Session) StartQuiz(cfg quiz.Config) int {
	if s.State != StateWelcome && s.State != StateError {
		return -1
	}
	s.State = StateLoading
	s.Config = cfg
	s.ErrMsg = ""
	s.Quiz = nil
	s.Answers = quiz.Answers{}
	s.gen++
	return s.gen
}

// FinishGeneration completes the generation attempt identified by gen.
// Stale tokens and arrivals outside Loading are discarded (reported as
// false): an abandoned request must never resurrect its quiz. On
// success the session enters Quiz; on failure it enters Error with a
// normalized message.
func (s *Session) FinishGeneration(gen int, data *quiz.QuizData, err error) bool {
	if gen != s.gen || s.State != StateLoading {
		return false
	}

	if err != nil {
		s.State = StateError
		s.ErrMsg = normalizeFailureMessage(err.Error())
		s.Quiz = nil
		return true
	}

	s.State = StateQuiz
	s.Quiz = data
	return true
}

// LoadDemo jumps to Quiz with the fixed built-in quiz from any state,
// clearing error and answers. Invalidates any in-flight generation.
func (s *Session) LoadDemo() {
	s.gen++
	s.State = StateQuiz
	s.Quiz = quiz.DemoQuiz()
	s.Answers = quiz.Answers{}
	s.ErrMsg = ""
}

// Answer records the selected option for a question. Valid only in the
// Quiz state; the first answer for a question is final and repeat calls
// are no-ops. Does not transition state.
func (s *Session) Answer(questionID, option string) {
	if s.State != StateQuiz {
		return
	}
	if _, answered := s.Answers[questionID]; answered {
		return
	}
	s.Answers[questionID] = option
}

// CompleteQuiz moves Quiz to Results, capturing the final answer map.
func (s *Session) CompleteQuiz(answers quiz.Answers) {
	if s.State != StateQuiz {
		return
	}
	if answers != nil {
		s.Answers = answers
	}
	s.State = StateResults
}

// Retry returns from Results to Welcome, discarding quiz data and
// answers. Seen-question history is owned elsewhere and survives.
func (s *Session) Retry() {
	if s.State != StateResults {
		return
	}
	s.State = StateWelcome
	s.Quiz = nil
	s.Answers = quiz.Answers{}
}

// BackToWelcome returns from Error to Welcome, discarding the error.
func (s *Session) BackToWelcome() {
	if s.State != StateError {
		return
	}
	s.State = StateWelcome
	s.ErrMsg = ""
}

// normalizeFailureMessage maps empty messages to the generic fallback
// and authentication-looking text to the fixed remediation string.
func normalizeFailureMessage(msg string) string {
	if msg == "" {
		return GenericFailureMessage
	}
	for _, marker := range []string{"401", "UNAUTHENTICATED", "CREDENTIALS_MISSING", "Authentication failed"} {
		if strings.Contains(msg, marker) {
			return AuthFailureMessage
		}
	}
	return msg
}
