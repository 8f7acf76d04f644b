// Package drill is the flash-card screen: it maps keys to controller
// operations and renders controller snapshots.
package drill

import (
	"strconv"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	dr "github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/screen"
	"github.com/abhisek/kuku/internal/ui/layout"
)

// Title is shown in the header while drilling.
const Title = "フラッシュ九九"

// DrillScreen implements screen.Screen for a practice session.
type DrillScreen struct {
	ctrl     *dr.Controller
	keys     keyMap
	help     help.Model
	showHelp bool
}

var (
	_ screen.Screen          = (*DrillScreen)(nil)
	_ screen.KeyHintProvider = (*DrillScreen)(nil)
	_ screen.StatusProvider  = (*DrillScreen)(nil)
	_ screen.Closer          = (*DrillScreen)(nil)
)

// New creates a DrillScreen driving ctrl.
func New(ctrl *dr.Controller) *DrillScreen {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	h.ShowAll = true
	return &DrillScreen{
		ctrl: ctrl,
		keys: newKeyMap(),
		help: h,
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return waitCmd(s.ctrl.Start())
}

func (s *DrillScreen) Title() string {
	return Title
}

// Status reports whether cues are audible.
func (s *DrillScreen) Status() string {
	if s.ctrl.Settings().Sound {
		return "♪ 音あり"
	}
	return "音なし"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	return s.keys.forMode(s.ctrl.Settings().Mode).hints()
}

// Close stops auto-play when the screen leaves the stack.
func (s *DrillScreen) Close() {
	s.ctrl.Close()
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoplayTickMsg:
		return s, waitCmd(s.ctrl.HandleTick(msg.Tick))
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	settings := s.ctrl.Settings()
	keys := s.keys.forMode(settings.Mode)

	switch {
	case key.Matches(msg, keys.Segment):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return s, nil
		}
		return s, waitCmd(s.ctrl.SetSegment(n))

	case key.Matches(msg, keys.Advance):
		return s, waitCmd(s.ctrl.Advance())

	case key.Matches(msg, keys.Play):
		return s, waitCmd(s.ctrl.TogglePlay())

	case key.Matches(msg, keys.Mode):
		next := dr.ModeAuto
		if settings.Mode == dr.ModeAuto {
			next = dr.ModeManual
		}
		return s, waitCmd(s.ctrl.SetDisplayMode(next))

	case key.Matches(msg, keys.Order):
		return s, waitCmd(s.ctrl.SetSortOrder(settings.Order.Next()))

	case key.Matches(msg, keys.Speed):
		s.ctrl.SetSpeed(settings.Speed.Next())

	case key.Matches(msg, keys.Sound):
		s.ctrl.SetSoundEnabled(!settings.Sound)

	case key.Matches(msg, keys.Reset):
		s.ctrl.Reset()

	case key.Matches(msg, keys.Help):
		s.showHelp = !s.showHelp

	case key.Matches(msg, keys.Quit):
		return s, tea.Quit
	}

	return s, nil
}
