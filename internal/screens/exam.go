package screens

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/scoring"
	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/components"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// timerTickMsg advances the elapsed-time display once per second.
type timerTickMsg time.Time

// ExamScreen presents the active quiz: one question at a time with
// free navigation, immediate feedback on answer, and a live score
// dashboard against the 83% passing line.
type ExamScreen struct {
	deps    Deps
	index   int
	options components.OptionList
	started time.Time
	elapsed time.Duration
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// NewExam creates the exam screen over the session's current quiz.
func NewExam(deps Deps) *ExamScreen {
	e := &ExamScreen{
		deps:    deps,
		started: time.Now(),
	}
	e.loadQuestion()
	return e
}

func (e *ExamScreen) Init() tea.Cmd {
	return timerTick()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (e *ExamScreen) Title() string {
	data := e.deps.Session.Quiz
	if data != nil && data.QuizTitle != "" {
		return data.QuizTitle
	}
	return "Exam"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "F", Description: "Finish"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadQuestion rebuilds the option list for the current index,
// restoring a previously recorded answer when navigating back.
func (e *ExamScreen) loadQuestion() {
	data := e.deps.Session.Quiz
	if data == nil || e.index < 0 || e.index >= len(data.Questions) {
		e.options = components.OptionList{}
		return
	}
	q := data.Questions[e.index]

	// Duplicate IDs share one answer entry; only the first occurrence
	// owns it.
	owner := e.index
	for i := range data.Questions {
		if data.Questions[i].QuestionID == q.QuestionID {
			owner = i
			break
		}
	}
	chosen := ""
	if owner == e.index {
		chosen = e.deps.Session.Answers[q.QuestionID]
	}
	e.options = components.NewOptionList(q.Options, q.CorrectAnswer, chosen)
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	data := e.deps.Session.Quiz
	if data == nil || len(data.Questions) == 0 {
		return e, nil
	}

	switch msg := msg.(type) {
	case timerTickMsg:
		e.elapsed = time.Since(e.started)
		return e, timerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "p":
			if e.index > 0 {
				e.index--
				e.loadQuestion()
			}
			return e, nil
		case "right", "n":
			if e.index < len(data.Questions)-1 {
				e.index++
				e.loadQuestion()
			}
			return e, nil
		case "f":
			e.deps.Session.CompleteQuiz(e.deps.Session.Answers)
			return e, replaceWith(NewResults(e.deps, e.elapsed))
		}

		var chosen string
		e.options, chosen = e.options.Update(msg)
		if chosen != "" {
			e.deps.Session.Answer(data.Questions[e.index].QuestionID, chosen)
		}
		return e, nil
	}

	return e, nil
}

func (e *ExamScreen) View(width, height int) string {
	data := e.deps.Session.Quiz
	if data == nil || len(data.Questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions to show.")
	}
	q := data.Questions[e.index]

	var b strings.Builder

	b.WriteString(e.renderDashboard(width))
	b.WriteString("\n\n")

	badge := theme.DifficultyBadge(q.Difficulty).Render(strings.ToUpper(q.Difficulty))
	position := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d   ", e.index+1, len(data.Questions)))
	b.WriteString("  " + position + badge + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width-4).
		Render(q.Question))
	b.WriteString("\n")

	if q.QuestionImageURL != "" {
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Italic(true).
			Render("sign: "+q.QuestionImageURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(e.options.View())

	for i, u := range q.OptionImageURLs {
		if u == "" {
			continue
		}
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%c) %s", 'A'+i, u)))
		b.WriteString("\n")
	}

	if len(e.deps.Session.Answers) == len(data.Questions) {
		b.WriteString("\n  " + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("All questions answered. Press F to see your results."))
		b.WriteString("\n")
	}

	return b.String()
}

// renderDashboard shows the running tally: correct, incorrect,
// answered progress, live percent colored by the passing line, and the
// elapsed timer.
func (e *ExamScreen) renderDashboard(width int) string {
	sess := e.deps.Session
	data := sess.Quiz

	result := scoring.Final(data, sess.Answers)
	live := scoring.LivePercent(data, sess.Answers)

	liveStyle := theme.Correct
	if live < scoring.PassingScore {
		liveStyle = theme.Incorrect
	}

	mins := int(e.elapsed.Minutes())
	secs := int(e.elapsed.Seconds()) % 60

	left := "  " +
		theme.Correct.Render(fmt.Sprintf("✓ %d", result.Correct)) + "   " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d", result.Incorrect)) + "   " +
		liveStyle.Render(fmt.Sprintf("%d%%", live))

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("⏱ %d:%02d", mins, secs)) + "  "

	answered := len(data.Questions) - unansweredCount(e.deps)
	barWidth := width - lipgloss.Width(left) - lipgloss.Width(right) - 8
	bar := components.NewProgressBar("", float64(answered)/float64(len(data.Questions)), false, barWidth)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - bar.Width
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap/2) + bar.View() + strings.Repeat(" ", gap-gap/2) + right
}

func unansweredCount(deps Deps) int {
	data := deps.Session.Quiz
	n := 0
	for _, q := range data.Questions {
		if _, ok := deps.Session.Answers[q.QuestionID]; !ok {
			n++
		}
	}
	return n
}
