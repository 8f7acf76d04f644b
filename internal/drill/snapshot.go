package drill

import (
	"github.com/abhisek/kuku/internal/problemgen"
	"github.com/abhisek/kuku/internal/session"
)

// Snapshot is a read-only view of the drill for rendering.
type Snapshot struct {
	Problem         problemgen.Problem
	Answer          int
	AnswerVisible   bool
	Index           int
	Total           int
	ProgressPercent float64
	Playing         bool
	Settings        Settings
}

// IsLast reports whether the current problem is the final one of the set.
func (s Snapshot) IsLast() bool {
	return s.Total > 0 && s.Index == s.Total-1
}

// Snapshot returns the current state of the drill.
func (c *Controller) Snapshot() Snapshot {
	p := c.set.At(c.state.Index)
	return Snapshot{
		Problem:         p,
		Answer:          p.Answer(),
		AnswerVisible:   c.state.AnswerVisible,
		Index:           c.state.Index,
		Total:           c.set.Len(),
		ProgressPercent: session.ProgressPercent(c.state, c.set.Len()),
		Playing:         c.state.Playing,
		Settings:        c.settings,
	}
}

// Problems returns a copy of the current set's problems in order.
func (c *Controller) Problems() []problemgen.Problem {
	out := make([]problemgen.Problem, c.set.Len())
	copy(out, c.set.Problems)
	return out
}
