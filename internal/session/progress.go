package session

// ProgressPercent returns how far through the set the learner is, counting
// the current problem as seen: (index+1)/total*100.
func ProgressPercent(st State, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(st.Index+1) / float64(total) * 100
}
