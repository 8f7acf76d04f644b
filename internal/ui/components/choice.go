package components

import (
	"strings"

	"github.com/abhisek/kuku/internal/ui/theme"
)

// Choice is a horizontal radio group. Key handling lives with the screen
// that owns the setting; Choice only renders.
type Choice struct {
	Label    string
	Options  []string
	Selected int
}

// NewChoice creates a radio group with the option at selected marked.
func NewChoice(label string, options []string, selected int) Choice {
	return Choice{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// View renders the group on one line.
func (c Choice) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts = append(parts, theme.Selected.Render("◉ "+opt))
		} else {
			parts = append(parts, theme.Unselected.Render("○ "+opt))
		}
	}

	row := strings.Join(parts, "  ")
	if c.Label == "" {
		return row
	}
	return theme.Label.Render(c.Label) + "  " + row
}
