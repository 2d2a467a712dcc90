package screens

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/scoring"
	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// reviewWindow is how many review rows are visible at once; the cursor
// scrolls the window.
const reviewWindow = 6

// ResultsScreen shows the final score, the pass/fail verdict against
// the DMV's passing line, and a scrollable per-question review.
type ResultsScreen struct {
	deps    Deps
	result  scoring.Result
	elapsed time.Duration
	cursor  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults scores the completed quiz. The questions just taken are
// recorded as seen so the next generation request avoids them.
func NewResults(deps Deps, elapsed time.Duration) *ResultsScreen {
	r := &ResultsScreen{
		deps:    deps,
		elapsed: elapsed,
	}
	if data := deps.Session.Quiz; data != nil {
		r.result = scoring.Final(data, deps.Session.Answers)

		texts := make([]string, 0, len(data.Questions))
		for _, q := range data.Questions {
			texts = append(texts, q.Question)
		}
		deps.History.RecordSeen(texts)
	}
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "New exam"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	total := 0
	if data := r.deps.Session.Quiz; data != nil {
		total = len(data.Questions)
	}

	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < total-1 {
			r.cursor++
		}
	case "enter", "r":
		r.deps.Session.Retry()
		return r, replaceWith(NewWelcome(r.deps))
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	data := r.deps.Session.Quiz
	if data == nil {
		return ""
	}

	var b strings.Builder

	verdict := theme.Fail.Render(" DID NOT PASS ")
	if r.result.Passed {
		verdict = theme.Pass.Render(" PASSED ")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	b.WriteString("\n\n")

	scoreStyle := theme.Incorrect
	if r.result.Passed {
		scoreStyle = theme.Correct
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("%d%%", r.result.Score)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  (%d%% required)", scoring.PassingScore))))
	b.WriteString("\n\n")

	mins := int(r.elapsed.Minutes())
	secs := int(r.elapsed.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d        Incorrect: %d        Unanswered: %d        Time: %d:%02d",
		r.result.Correct, r.result.Incorrect, r.result.Unanswered, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 72)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(r.renderReview(width))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("press enter for a fresh exam"))

	return b.String()
}

// renderReview lists each question with the given and correct answers,
// windowed around the cursor.
func (r *ResultsScreen) renderReview(width int) string {
	data := r.deps.Session.Quiz

	start := 0
	if r.cursor >= reviewWindow {
		start = r.cursor - reviewWindow + 1
	}
	end := min(start+reviewWindow, len(data.Questions))

	var b strings.Builder
	for i := start; i < end; i++ {
		q := data.Questions[i]
		given, answered := r.deps.Session.Answers[q.QuestionID]

		var mark string
		var style lipgloss.Style
		switch {
		case !answered:
			mark, style = "·", lipgloss.NewStyle().Foreground(theme.TextDim)
		case given == q.CorrectAnswer:
			mark, style = "✓", theme.Correct
		default:
			mark, style = "✗", theme.Incorrect
		}

		prefix := "  "
		if i == r.cursor {
			prefix = "▸ "
		}

		text := q.Question
		if maxLen := width - 12; maxLen > 10 && len(text) > maxLen {
			text = text[:maxLen-3] + "..."
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left,
			"  "+prefix+style.Render(mark+" "+fmt.Sprintf("%2d. ", i+1)+text)))
		b.WriteString("\n")

		if i == r.cursor {
			detail := "    correct: " + q.CorrectAnswer
			if answered && given != q.CorrectAnswer {
				detail = "    your answer: " + given + "    " + detail
			}
			b.WriteString("    " + lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
