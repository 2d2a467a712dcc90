package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/hostbridge"
	"github.com/koundinyapidaparthy2/CADMV/internal/quizgen"
	"github.com/koundinyapidaparthy2/CADMV/internal/router"
	"github.com/koundinyapidaparthy2/CADMV/internal/screen"
	"github.com/koundinyapidaparthy2/CADMV/internal/screens"
	"github.com/koundinyapidaparthy2/CADMV/internal/session"
	"github.com/koundinyapidaparthy2/CADMV/internal/ui/layout"
)

// Options carries the services the TUI needs. Client must be non-nil;
// a client built over a nil provider keeps demo mode working.
type Options struct {
	Client  *quizgen.Client
	History *history.Store
	Keys    hostbridge.KeySelector
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screens.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	deps := screens.Deps{
		Session: session.New(),
		Client:  opts.Client,
		History: opts.History,
		Keys:    opts.Keys,
	}
	return AppModel{
		deps:   deps,
		router: router.New(screens.NewWelcome(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	seen := 0
	if m.deps.History != nil {
		seen = m.deps.History.SeenCount()
	}
	header := layout.RenderHeader(title, m.deps.Client.Model(), seen, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
