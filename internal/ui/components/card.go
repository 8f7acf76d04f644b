package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all drill sections
// so the boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(content)
}

// HighlightCard is a Card with a colored border, used for the problem and
// the revealed answer.
func HighlightCard(content string, cw int, border color.Color) string {
	return theme.Card.
		BorderForeground(border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(content)
}
