package session

// Advance applies one manual "next" action to a set of total problems:
// reveal the answer, move to the next problem, or wrap to the first one
// after the last answer has been shown. Playing is left untouched.
func Advance(st *State, total int) Outcome {
	if total <= 0 {
		return OutcomeNone
	}
	if !st.AnswerVisible {
		st.AnswerVisible = true
		return OutcomeRevealed
	}
	if st.Index < total-1 {
		st.Index++
		st.AnswerVisible = false
		return OutcomeNext
	}
	st.Index = 0
	st.AnswerVisible = false
	return OutcomeWrapped
}

// Tick applies one auto-play step. It behaves like Advance except that the
// end of the set stops playback instead of looping.
func Tick(st *State, total int) Outcome {
	if total <= 0 {
		return OutcomeNone
	}
	if !st.AnswerVisible {
		st.AnswerVisible = true
		return OutcomeRevealed
	}
	if st.Index < total-1 {
		st.Index++
		st.AnswerVisible = false
		return OutcomeNext
	}
	st.Index = 0
	st.AnswerVisible = false
	st.Playing = false
	return OutcomeFinished
}

// Reset returns to the first problem with the answer hidden and stops auto-play.
func Reset(st *State) {
	st.Index = 0
	st.AnswerVisible = false
	st.Playing = false
}

// Restart is applied when the problem set is replaced. Playing is kept so
// auto-play continues on the new set.
func Restart(st *State) {
	st.Index = 0
	st.AnswerVisible = false
}

// TogglePlay flips Playing. It is a no-op unless auto is true.
// Returns the resulting Playing value.
func TogglePlay(st *State, auto bool) bool {
	if !auto {
		return st.Playing
	}
	st.Playing = !st.Playing
	return st.Playing
}
