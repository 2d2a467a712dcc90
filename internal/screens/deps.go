// Package screens contains the five screens of the exam flow: welcome,
// loading, exam, results and failure. They live in one package because
// each screen hands off to the next through router.ReplaceScreenMsg and
// the flow loops back to welcome.
package screens

import (
	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/hostbridge"
	"github.com/koundinyapidaparthy2/CADMV/internal/quizgen"
	"github.com/koundinyapidaparthy2/CADMV/internal/session"
)

// Deps carries the shared services every screen in the flow may need.
// Session is the single state machine instance for the program run.
type Deps struct {
	Session *session.Session
	Client  *quizgen.Client
	History *history.Store
	Keys    hostbridge.KeySelector
}
