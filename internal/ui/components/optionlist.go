package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

// OptionList presents the answer options of one exam question. The
// first submitted choice locks the list: further input is ignored and
// the view switches to correct/incorrect coloring.
type OptionList struct {
	Options []string
	Correct string
	Cursor  int

	// Chosen is the locked-in answer, empty while unanswered.
	Chosen string
}

// NewOptionList creates a list for one question. chosen carries a
// previously recorded answer when the user navigates back to the
// question.
func NewOptionList(options []string, correct, chosen string) OptionList {
	return OptionList{
		Options: options,
		Correct: correct,
		Chosen:  chosen,
	}
}

// Locked reports whether an answer has been recorded.
func (o OptionList) Locked() bool {
	return o.Chosen != ""
}

// Update moves the cursor and locks in a choice on enter. Returns the
// chosen option string on the update that locked it, otherwise "".
func (o OptionList) Update(msg tea.Msg) (OptionList, string) {
	if o.Locked() {
		return o, ""
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, ""
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter":
		if o.Cursor >= 0 && o.Cursor < len(o.Options) {
			o.Chosen = o.Options[o.Cursor]
			return o, o.Chosen
		}
	}
	return o, ""
}

// View renders the options with letter labels. After locking, the
// correct option is green, a wrong pick is red, and the rest dim.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		line := fmt.Sprintf("  %c)  %s", 'A'+i, opt)

		if o.Locked() {
			switch {
			case opt == o.Correct:
				s += theme.Correct.Render("✓"+line) + "\n"
			case opt == o.Chosen:
				s += theme.Incorrect.Render("✗"+line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+line) + "\n"
			}
			continue
		}

		if i == o.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸"+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(" "+line) + "\n"
		}
	}
	return s
}
