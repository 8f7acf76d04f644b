package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/router"
	"github.com/abhisek/kuku/internal/screen"
	"github.com/abhisek/kuku/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const tagline = "九九をマスターしよう！"

// gridRows is the corner of the multiplication table that fills in
// during the first phase.
var gridRows = []string{
	"1  2  3  4  5",
	"2  4  6  8 10",
	"3  6  9 12 15",
	"4  8 12 16 20",
	"5 10 15 20 25",
}

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing off to the drill.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will be replaced by the screen next
// builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

// visibleRows returns how many grid rows have appeared so far.
func (w *WelcomeScreen) visibleRows() int {
	n := int(w.elapsed/(phase1End/time.Duration(len(gridRows)))) + 1
	return min(n, len(gridRows))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	gridStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	rows := make([]string, 0, len(gridRows))
	for _, r := range gridRows[:w.visibleRows()] {
		rows = append(rows, gridStyle.Render(r))
	}

	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Primary).Render(sparkle)
		rows[0] = s1 + "  " + rows[0] + "  " + s2
		rows[len(rows)-1] = s2 + "  " + rows[len(rows)-1] + "  " + s1
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Center, rows...))

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(tagline))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
