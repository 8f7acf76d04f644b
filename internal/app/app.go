package app

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/router"
	"github.com/abhisek/kuku/internal/screen"
	drillscreen "github.com/abhisek/kuku/internal/screens/drill"
	"github.com/abhisek/kuku/internal/screens/welcome"
	"github.com/abhisek/kuku/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Controller *drill.Controller
	Logger     *log.Logger
	// SkipWelcome opens the drill screen directly.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *log.Logger
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome splash, or on
// the drill screen when SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Controller == nil {
		opts.Controller = drill.New(drill.Options{Logger: logger})
	}

	drillFactory := func() screen.Screen {
		return drillscreen.New(opts.Controller)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = drillFactory()
	} else {
		initial = welcome.New(drillFactory)
	}

	return AppModel{
		router: router.New(initial),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Debug("quit requested")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.WindowTitle = "フラッシュ九九"

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer at the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{{Key: "any key", Description: "Start"}}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and releases screen resources on exit.
func Run(opts Options) error {
	m := newAppModel(opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
