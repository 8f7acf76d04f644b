package cue

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Output plays a cue on some audio device.
type Output interface {
	Play(ev Event) error
}

// Opener acquires an Output. It is called at most once per Dispatcher.
type Opener func() (Output, error)

// Dispatcher forwards cues to an Output while sound is enabled.
//
// The Output is opened lazily on the first enabled dispatch, so a run with
// sound turned off never touches the audio device. Failures to open or play
// are logged and swallowed: the dispatcher degrades to silence.
type Dispatcher struct {
	open   Opener
	logger *log.Logger

	mu     sync.Mutex
	out    Output
	opened bool
}

// NewDispatcher creates a Dispatcher. A nil logger discards log output.
func NewDispatcher(open Opener, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{open: open, logger: logger}
}

// Dispatch plays ev when enabled is true.
func (d *Dispatcher) Dispatch(ev Event, enabled bool) {
	if !enabled {
		return
	}
	out := d.output()
	if out == nil {
		return
	}
	if err := out.Play(ev); err != nil {
		d.logger.Debug("cue playback failed", "freq", ev.Frequency, "err", err)
	}
}

func (d *Dispatcher) output() Output {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opened {
		return d.out
	}
	d.opened = true
	if d.open == nil {
		return nil
	}
	out, err := d.open()
	if err != nil {
		d.logger.Debug("audio output unavailable, cues disabled", "err", err)
		return nil
	}
	d.out = out
	return d.out
}

// Close releases the Output if one was opened and it implements io.Closer.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
