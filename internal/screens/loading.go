package screens

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/session"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/components"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// generationDoneMsg carries the outcome of one generation attempt. The
// token ties it to the attempt that issued it so a late arrival after
// the user bailed out to demo mode is discarded.
type generationDoneMsg struct {
	gen  int
	data *quiz.QuizData
	err  error
}

// progressTickMsg advances the simulated progress bar.
type progressTickMsg time.Time

// LoadingScreen runs the generation request in the background and
// animates a spinner with a simulated progress bar until the response
// lands. Progress creeps toward 99% and never completes on its own;
// the real signal is the generation message.
type LoadingScreen struct {
	deps     Deps
	cfg      quiz.Config
	gen      int
	spinner  spinner.Model
	progress float64
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// NewLoading creates the loading screen for a generation attempt
// already registered with the session under gen.
func NewLoading(deps Deps, cfg quiz.Config, gen int) *LoadingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return &LoadingScreen{
		deps:    deps,
		cfg:     cfg,
		gen:     gen,
		spinner: sp,
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(l.spinner.Tick, progressTick(), l.generate())
}

func progressTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func (l *LoadingScreen) Title() string {
	return "Generating"
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "D", Description: "Demo mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// generate runs the request off the UI loop. Seen hashes are read here
// so the prompt reflects history as of this attempt.
func (l *LoadingScreen) generate() tea.Cmd {
	deps := l.deps
	cfg := l.cfg
	gen := l.gen
	return func() tea.Msg {
		seen := deps.History.SeenHashes()
		data, err := deps.Client.GenerateQuiz(context.Background(), cfg, seen)
		return generationDoneMsg{gen: gen, data: data, err: err}
	}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generationDoneMsg:
		if !l.deps.Session.FinishGeneration(msg.gen, msg.data, msg.err) {
			return l, nil
		}
		if l.deps.Session.State == session.StateError {
			return l, replaceWith(NewFailure(l.deps))
		}
		return l, replaceWith(NewExam(l.deps))

	case progressTickMsg:
		l.progress += rand.Float64() * 10
		if l.progress > 99 {
			l.progress = 99
		}
		return l, progressTick()

	case tea.KeyMsg:
		if msg.String() == "d" {
			// Bail out to the demo quiz; the in-flight response is
			// invalidated by the session token.
			l.deps.Session.LoadDemo()
			return l, replaceWith(NewExam(l.deps))
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

func (l *LoadingScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s Preparing Your Exam...", l.spinner.View()))

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(
			"Reading the handbook and crafting %d unique questions.\nThis usually takes about 10-20 seconds.",
			l.cfg.QuestionCount))

	barWidth := min(width-20, 48)
	bar := components.NewProgressBar("", l.progress/100, true, barWidth)

	content := title + "\n\n" + hint + "\n\n" + bar.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
