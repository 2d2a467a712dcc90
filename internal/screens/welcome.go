package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
	"github.com/koundinyapidaparthy2/CADMV/internal/router"
	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/components"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

const pickerLabelWidth = 14

// Row indexes of the welcome form: four pickers followed by actions.
const (
	rowDifficulty = iota
	rowStyle
	rowFocus
	rowCount
	rowStart
	rowDemo
	rowSelectKey
)

// WelcomeScreen is the exam setup form: difficulty, style, focus and
// question count pickers plus the start and demo actions.
type WelcomeScreen struct {
	deps    Deps
	pickers [4]components.Picker
	row     int
	notice  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// NewWelcome creates the welcome screen with the default selection, or
// with the session's previous configuration when one exists.
func NewWelcome(deps Deps) *WelcomeScreen {
	cfg := deps.Session.Config
	if cfg.QuestionCount == 0 {
		cfg = quiz.DefaultConfig()
	}

	counts := make([]string, len(quiz.CountChoices))
	for i, c := range quiz.CountChoices {
		counts[i] = strconv.Itoa(c)
	}

	w := &WelcomeScreen{deps: deps}
	w.pickers[rowDifficulty] = components.NewPicker("Difficulty",
		[]string{"mix", "easy", "medium", "hard"}, string(cfg.Difficulty))
	w.pickers[rowStyle] = components.NewPicker("Style",
		[]string{"mixed", "scenario", "straightforward"}, string(cfg.Style))
	w.pickers[rowFocus] = components.NewPicker("Focus",
		[]string{"mix", "numeric", "minors", "dui", "signs", "fines"}, string(cfg.Focus))
	w.pickers[rowCount] = components.NewPicker("Questions",
		counts, strconv.Itoa(cfg.QuestionCount))
	w.pickers[rowDifficulty].Focused = true
	return w
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// rowCountTotal is the number of selectable rows, including the key
// picker row that only appears when no provider is configured.
func (w *WelcomeScreen) rowCountTotal() int {
	if w.offline() {
		return rowSelectKey + 1
	}
	return rowDemo + 1
}

func (w *WelcomeScreen) offline() bool {
	return w.deps.Client.Model() == ""
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(keyPickerMsg); ok {
		if m.alreadySelected {
			w.notice = "A key is already selected. Restart dmvprep to pick it up."
		} else if m.err != nil {
			w.notice = "Could not open the key picker: " + m.err.Error()
		} else {
			w.notice = "Key picker requested. Restart the exam once a key is selected."
		}
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if w.row > 0 {
			w.row--
		}
	case "down", "j":
		if w.row < w.rowCountTotal()-1 {
			w.row++
		}
	case "enter":
		switch w.row {
		case rowStart:
			return w, w.start()
		case rowDemo:
			w.deps.Session.LoadDemo()
			return w, replaceWith(NewExam(w.deps))
		case rowSelectKey:
			return w, w.openKeyPicker()
		}
	default:
		if w.row < len(w.pickers) {
			w.pickers[w.row], _ = w.pickers[w.row].Update(msg)
		}
	}

	for i := range w.pickers {
		w.pickers[i].Focused = i == w.row
	}
	return w, nil
}

// config assembles the quiz configuration from the current picker
// values.
func (w *WelcomeScreen) config() quiz.Config {
	count, err := strconv.Atoi(w.pickers[rowCount].Value())
	if err != nil || count <= 0 {
		count = quiz.DefaultConfig().QuestionCount
	}
	return quiz.Config{
		Difficulty:    quiz.Difficulty(w.pickers[rowDifficulty].Value()),
		Style:         quiz.Style(w.pickers[rowStyle].Value()),
		Focus:         quiz.Focus(w.pickers[rowFocus].Value()),
		QuestionCount: count,
	}
}

func (w *WelcomeScreen) start() tea.Cmd {
	cfg := w.config()
	gen := w.deps.Session.StartQuiz(cfg)
	if gen < 0 {
		return nil
	}
	return replaceWith(NewLoading(w.deps, cfg, gen))
}

func (w *WelcomeScreen) openKeyPicker() tea.Cmd {
	keys := w.deps.Keys
	return func() tea.Msg {
		if keys == nil {
			return keyPickerMsg{err: fmt.Errorf("no key selector available")}
		}
		ctx := context.Background()
		if selected, err := keys.HasSelectedKey(ctx); err == nil && selected {
			return keyPickerMsg{alreadySelected: true}
		}
		return keyPickerMsg{err: keys.OpenSelectKey(ctx)}
	}
}

// keyPickerMsg reports the outcome of an OpenSelectKey request.
type keyPickerMsg struct {
	alreadySelected bool
	err             error
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderBanner(width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("California DMV Practice Exam"))
	b.WriteString("\n\n")

	seen := w.deps.History.SeenCount()
	if seen > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d unique questions seen so far", seen)))
		b.WriteString("\n\n")
	}

	var form strings.Builder
	for i := range w.pickers {
		form.WriteString(w.pickers[i].View(pickerLabelWidth))
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(w.actionRow(rowStart, "START EXAM"))
	form.WriteString("\n")
	form.WriteString(w.actionRow(rowDemo, "DEMO MODE"))
	form.WriteString("\n")
	if w.offline() {
		form.WriteString(w.actionRow(rowSelectKey, "SELECT API KEY"))
		form.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))

	if w.offline() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No API key configured. Starting an exam will fail; demo mode still works."))
	}
	if w.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(w.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (w *WelcomeScreen) actionRow(row int, label string) string {
	if w.row == row {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("  ▸ " + label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("    " + label)
}

// replaceWith emits a router message swapping the active screen.
func replaceWith(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}
