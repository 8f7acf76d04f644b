package components

import (
	"github.com/abhisek/kuku/internal/ui/theme"
)

// Button is a labelled action with the key that triggers it.
type Button struct {
	Key     string
	Label   string
	Primary bool
}

// NewButton creates a new button.
func NewButton(key, label string, primary bool) Button {
	return Button{
		Key:     key,
		Label:   label,
		Primary: primary,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Primary {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
