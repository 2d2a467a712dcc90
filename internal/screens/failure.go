package screens

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/components"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// FailureScreen shows a generation failure with recovery actions: try
// again with the same configuration, fall back to the demo quiz, or
// return to the setup form.
type FailureScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*FailureScreen)(nil)
var _ screen.KeyHintProvider = (*FailureScreen)(nil)

// NewFailure creates the failure screen over the session's error
// message.
func NewFailure(deps Deps) *FailureScreen {
	f := &FailureScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "TRY AGAIN", Action: f.retry},
		{Label: "DEMO MODE", Action: f.demo},
		{Label: "BACK TO SETUP", Action: f.back},
	}
	if deps.Keys != nil {
		items = append(items, components.MenuItem{Label: "SELECT API KEY", Action: f.selectKey})
	}
	f.menu = components.NewMenu(items)
	return f
}

func (f *FailureScreen) Init() tea.Cmd {
	return nil
}

func (f *FailureScreen) Title() string {
	return "Error"
}

func (f *FailureScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FailureScreen) retry() tea.Cmd {
	cfg := f.deps.Session.Config
	gen := f.deps.Session.StartQuiz(cfg)
	if gen < 0 {
		return nil
	}
	return replaceWith(NewLoading(f.deps, cfg, gen))
}

func (f *FailureScreen) demo() tea.Cmd {
	f.deps.Session.LoadDemo()
	return replaceWith(NewExam(f.deps))
}

func (f *FailureScreen) back() tea.Cmd {
	f.deps.Session.BackToWelcome()
	return replaceWith(NewWelcome(f.deps))
}

func (f *FailureScreen) selectKey() tea.Cmd {
	w := NewWelcome(f.deps)
	f.deps.Session.BackToWelcome()
	return tea.Batch(replaceWith(w), w.openKeyPicker())
}

func (f *FailureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	f.menu, cmd = f.menu.Update(msg)
	return f, cmd
}

func (f *FailureScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("⚠ Exam generation failed"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 72)).
		Render(f.deps.Session.ErrMsg))
	b.WriteString("\n\n")

	b.WriteString(f.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
