package session

// Outcome names the transition a single Advance or Tick performed.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Nothing changed
	OutcomeRevealed                // Answer of the current problem became visible
	OutcomeNext                    // Moved to the next problem, answer hidden
	OutcomeWrapped                 // Manual advance past the last problem, back to the first
	OutcomeFinished                // Auto-play finished the set and stopped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRevealed:
		return "revealed"
	case OutcomeNext:
		return "next"
	case OutcomeWrapped:
		return "wrapped"
	case OutcomeFinished:
		return "finished"
	default:
		return "none"
	}
}

// State tracks the learner's position within the current problem set.
//
// State is owned by the drill controller; the transition functions in this
// package are the only code that mutates it.
type State struct {
	// Index is the position in the current problem set, 0-based.
	Index int

	// AnswerVisible is true once the current problem's answer is revealed.
	AnswerVisible bool

	// Playing is true while auto-play is running. Only meaningful in auto mode.
	Playing bool
}
