package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// Picker cycles through a fixed list of choices with left/right keys.
// Used for the exam setup fields on the welcome screen.
type Picker struct {
	Label   string
	Options []string
	Index   int
	Focused bool
}

// NewPicker creates a picker positioned at the option equal to initial,
// or at the first option when initial is not present.
func NewPicker(label string, options []string, initial string) Picker {
	idx := 0
	for i, o := range options {
		if o == initial {
			idx = i
			break
		}
	}
	return Picker{Label: label, Options: options, Index: idx}
}

// Value returns the currently selected option.
func (p Picker) Value() string {
	if p.Index < 0 || p.Index >= len(p.Options) {
		return ""
	}
	return p.Options[p.Index]
}

// Update handles left/right cycling. Only a focused picker reacts.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused || len(p.Options) == 0 {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Index = (p.Index - 1 + len(p.Options)) % len(p.Options)
	case "right", "l":
		p.Index = (p.Index + 1) % len(p.Options)
	}
	return p, nil
}

// View renders "Label   ◂ value ▸" with the value highlighted when
// focused.
func (p Picker) View(labelWidth int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(labelWidth).
		Render(p.Label)

	value := fmt.Sprintf("◂ %s ▸", p.Value())
	if p.Focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ ") +
			label + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value)
	}
	return "    " + label + lipgloss.NewStyle().Foreground(theme.Text).Render(value)
}
