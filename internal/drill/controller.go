// Package drill is the practice session controller. It owns the problem
// set, the session state, the auto-play scheduler and the cue dispatcher,
// and exposes the operations the drill screen calls plus read-only
// snapshots for rendering.
package drill

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/abhisek/kuku/internal/autoplay"
	"github.com/abhisek/kuku/internal/cue"
	"github.com/abhisek/kuku/internal/problemgen"
	"github.com/abhisek/kuku/internal/session"
)

// CueDispatcher receives the cue of each manual transition.
type CueDispatcher interface {
	Dispatch(ev cue.Event, soundEnabled bool)
}

// Options configures a Controller. Zero values are replaced with defaults.
type Options struct {
	Settings Settings
	Clock    clockwork.Clock
	Rand     *rand.Rand
	Cues     CueDispatcher
	Logger   *log.Logger
}

// Controller drives one drill. It is not safe for concurrent use: every
// method must be called from the goroutine that handles input, which is
// what makes each transition atomic with respect to the others.
//
// Methods that may arm the auto-play timer return an autoplay.Wait. The
// caller waits on it off the input goroutine and passes the resulting tick
// back through HandleTick. A nil Wait means no new tick was armed.
type Controller struct {
	settings Settings
	set      problemgen.ProblemSet
	state    session.State

	sched  *autoplay.Scheduler
	cues   CueDispatcher
	rng    *rand.Rand
	logger *log.Logger
}

type discardCues struct{}

func (discardCues) Dispatch(cue.Event, bool) {}

// New creates a Controller and generates its first problem set.
func New(opts Options) *Controller {
	if opts.Settings == (Settings{}) {
		opts.Settings = DefaultSettings()
	}
	if opts.Cues == nil {
		opts.Cues = discardCues{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		settings: opts.Settings.normalize(),
		sched:    autoplay.New(opts.Clock),
		cues:     opts.Cues,
		rng:      opts.Rand,
		logger:   opts.Logger,
	}
	c.set = problemgen.Generate(c.settings.Segment, c.settings.Order, c.rng)
	return c
}

// Start arms auto-play if the initial settings call for it.
func (c *Controller) Start() autoplay.Wait {
	return c.reschedule()
}

// Settings returns the current settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSegment switches to another table and regenerates the set.
// Out-of-range segments are ignored.
func (c *Controller) SetSegment(n int) autoplay.Wait {
	if !problemgen.ValidSegment(n) {
		c.logger.Warn("ignoring invalid segment", "segment", n)
		return nil
	}
	if n == c.settings.Segment {
		return nil
	}
	c.settings.Segment = n
	return c.regenerate()
}

// SetSortOrder changes the order and regenerates the set.
func (c *Controller) SetSortOrder(o problemgen.Order) autoplay.Wait {
	if !o.Valid() {
		c.logger.Warn("ignoring invalid order", "order", o)
		return nil
	}
	if o == c.settings.Order {
		return nil
	}
	c.settings.Order = o
	return c.regenerate()
}

// SetDisplayMode switches between manual and auto. Leaving auto cancels
// the pending tick; entering auto resumes if playback was on.
func (c *Controller) SetDisplayMode(m DisplayMode) autoplay.Wait {
	if !m.Valid() {
		c.logger.Warn("ignoring invalid display mode", "mode", m)
		return nil
	}
	if m == c.settings.Mode {
		return nil
	}
	c.settings.Mode = m
	c.logger.Debug("display mode changed", "mode", m)
	return c.reschedule()
}

// SetSpeed changes the auto-play interval. A tick that is already pending
// keeps its interval; the new speed applies from the next tick on.
func (c *Controller) SetSpeed(s Speed) {
	if !s.Valid() {
		c.logger.Warn("ignoring invalid speed", "speed", float64(s))
		return
	}
	c.settings.Speed = s
}

// SetSoundEnabled turns cues on or off.
func (c *Controller) SetSoundEnabled(on bool) {
	c.settings.Sound = on
}

// Advance reveals the answer or moves on, emitting the matching cue.
func (c *Controller) Advance() autoplay.Wait {
	out := session.Advance(&c.state, c.set.Len())
	if ev, ok := cue.For(out); ok {
		c.cues.Dispatch(ev, c.settings.Sound)
	}
	if out == session.OutcomeWrapped {
		c.logger.Info("set completed", "segment", c.set.Segment, "order", c.settings.Order)
	}
	if c.autoPlaying() {
		// The pending tick was armed for the previous position.
		return c.reschedule()
	}
	return nil
}

// Reset returns to the first problem and stops auto-play.
func (c *Controller) Reset() {
	session.Reset(&c.state)
	c.sched.Cancel()
}

// TogglePlay starts or pauses auto-play. No-op in manual mode.
func (c *Controller) TogglePlay() autoplay.Wait {
	if c.settings.Mode != ModeAuto {
		return nil
	}
	session.TogglePlay(&c.state, true)
	c.logger.Debug("auto-play toggled", "playing", c.state.Playing)
	return c.reschedule()
}

// HandleTick applies a fired auto-play tick. Ticks that were cancelled or
// superseded while in flight are dropped.
func (c *Controller) HandleTick(t autoplay.Tick) autoplay.Wait {
	if !c.sched.Accept(t) {
		c.logger.Debug("dropping stale tick", "seq", t.Seq)
		return nil
	}
	if !c.autoPlaying() {
		return nil
	}
	if session.Tick(&c.state, c.set.Len()) == session.OutcomeFinished {
		c.logger.Info("auto-play finished", "segment", c.set.Segment, "order", c.settings.Order)
	}
	return c.reschedule()
}

// Close cancels any pending tick. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.sched.Cancel()
}

// Pending reports whether an auto-play tick is armed.
func (c *Controller) Pending() bool {
	return c.sched.Pending()
}

func (c *Controller) autoPlaying() bool {
	return c.settings.Mode == ModeAuto && c.state.Playing
}

func (c *Controller) regenerate() autoplay.Wait {
	c.set = problemgen.Generate(c.settings.Segment, c.settings.Order, c.rng)
	session.Restart(&c.state)
	c.logger.Debug("problem set generated", "segment", c.set.Segment, "order", c.settings.Order)
	return c.reschedule()
}

// reschedule cancels the pending tick and, when auto-play is running, arms
// a new one using the current speed.
func (c *Controller) reschedule() autoplay.Wait {
	c.sched.Cancel()
	if !c.autoPlaying() {
		return nil
	}
	return c.sched.Schedule(c.settings.Speed.Interval())
}
