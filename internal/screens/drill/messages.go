package drill

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kuku/internal/autoplay"
)

// autoplayTickMsg is sent when an armed auto-play interval elapses.
type autoplayTickMsg struct {
	Tick autoplay.Tick
}

// waitCmd turns an armed tick into a command. A cancelled tick produces
// no message.
func waitCmd(w autoplay.Wait) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := w()
		if !ok {
			return nil
		}
		return autoplayTickMsg{Tick: t}
	}
}
