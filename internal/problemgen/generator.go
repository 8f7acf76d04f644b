package problemgen

import (
	"math/rand/v2"
	"slices"
)

// Generate builds the problem set for segment in the given order.
//
// Segment must already be validated to [MinSegment, MaxSegment]. For
// OrderRandom the problems are permuted with rng using a Fisher-Yates
// shuffle, so every one of the 9! orderings is equally likely; a nil rng
// uses the package-level source. Unknown orders fall back to ascending.
func Generate(segment int, order Order, rng *rand.Rand) ProblemSet {
	problems := make([]Problem, 0, SetSize)
	for m := 1; m <= SetSize; m++ {
		problems = append(problems, Problem{Multiplicand: segment, Multiplier: m})
	}

	switch order {
	case OrderDescending:
		slices.Reverse(problems)
	case OrderRandom:
		shuffle(problems, rng)
	}

	return ProblemSet{Segment: segment, Problems: problems}
}

func shuffle(problems []Problem, rng *rand.Rand) {
	swap := func(i, j int) { problems[i], problems[j] = problems[j], problems[i] }
	if rng == nil {
		rand.Shuffle(len(problems), swap)
		return
	}
	rng.Shuffle(len(problems), swap)
}
