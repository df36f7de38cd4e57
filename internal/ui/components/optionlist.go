package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpal/internal/ui/theme"
)

// OptionList shows answer options for one quiz question. Options are
// identified by value, not index: the correct and chosen answers are
// matched by exact string equality, mirroring how scoring works.
type OptionList struct {
	Options []string
	Cursor  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update handles cursor movement. Selection itself is owned by the screen,
// which reads Current() on enter.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
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
	}

	return o, nil
}

// Current returns the option value under the cursor.
func (o OptionList) Current() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// View renders the options. Before reveal, the cursor line is highlighted.
// After reveal, the correct option shows green and a wrong chosen option
// shows red; render transforms each option for display (math typesetting).
func (o OptionList) View(revealed bool, correct, chosen string, render func(string) string) string {
	if render == nil {
		render = func(s string) string { return s }
	}

	labels := "ABCDEFGH"

	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}
		prefix := "  "
		if i == o.Cursor && !revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, render(opt))

		switch {
		case revealed && opt == correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case revealed && opt == chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
