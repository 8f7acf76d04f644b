// Package cue turns session transitions into short tone cues and hands them
// to an audio output.
package cue

import (
	"time"

	"github.com/abhisek/kuku/internal/session"
)

// Event describes one tone: a pure sine at Frequency Hz lasting Duration.
type Event struct {
	Frequency float64
	Duration  time.Duration
}

// Cues for manual advances.
var (
	Reveal   = Event{Frequency: 800, Duration: 100 * time.Millisecond}
	Next     = Event{Frequency: 600, Duration: 100 * time.Millisecond}
	Complete = Event{Frequency: 1200, Duration: 200 * time.Millisecond}
)

// For returns the cue for a manual advance outcome. Auto-play outcomes
// (OutcomeFinished) and OutcomeNone have no cue.
func For(o session.Outcome) (Event, bool) {
	switch o {
	case session.OutcomeRevealed:
		return Reveal, true
	case session.OutcomeNext:
		return Next, true
	case session.OutcomeWrapped:
		return Complete, true
	default:
		return Event{}, false
	}
}

// Named returns a cue by name, for the CLI preview command.
func Named(name string) (Event, bool) {
	switch name {
	case "reveal":
		return Reveal, true
	case "next":
		return Next, true
	case "complete":
		return Complete, true
	}
	return Event{}, false
}
