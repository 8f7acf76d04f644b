package problemgen

import (
	"fmt"
	"strings"
)

// MinSegment and MaxSegment bound the multiplicand of a problem set.
const (
	MinSegment = 1
	MaxSegment = 9
)

// SetSize is the number of problems in every set (multipliers 1..9).
const SetSize = 9

// Problem is a single multiplication fact, e.g. 3 × 4.
type Problem struct {
	// Multiplicand is the segment the problem belongs to ("the N's table").
	Multiplicand int

	// Multiplier runs 1..9 across a set.
	Multiplier int
}

// Answer returns the product.
func (p Problem) Answer() int {
	return p.Multiplicand * p.Multiplier
}

// String renders the problem the way the drill card shows it.
func (p Problem) String() string {
	return fmt.Sprintf("%d × %d", p.Multiplicand, p.Multiplier)
}

// ProblemSet is the ordered collection of nine problems for one segment.
// A set is never mutated after Generate returns it; a change of segment or
// order produces a new set.
type ProblemSet struct {
	Segment  int
	Problems []Problem
}

// Len returns the number of problems in the set.
func (s ProblemSet) Len() int {
	return len(s.Problems)
}

// At returns the problem at index i.
func (s ProblemSet) At(i int) Problem {
	return s.Problems[i]
}

// Order controls how the nine problems of a set are arranged.
type Order string

const (
	// OrderAscending presents multipliers 1..9 (あがり九九).
	OrderAscending Order = "ascending"

	// OrderDescending presents multipliers 9..1 (さがり九九).
	OrderDescending Order = "descending"

	// OrderRandom presents a fresh uniform shuffle on every generation (ばらばら九九).
	OrderRandom Order = "random"
)

// Orders lists every order in the sequence the drill screen cycles through.
var Orders = []Order{OrderAscending, OrderDescending, OrderRandom}

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	switch o {
	case OrderAscending, OrderDescending, OrderRandom:
		return true
	}
	return false
}

// Label returns the Japanese name shown in the settings panel.
func (o Order) Label() string {
	switch o {
	case OrderDescending:
		return "さがり九九"
	case OrderRandom:
		return "ばらばら九九"
	default:
		return "あがり九九"
	}
}

// Next returns the order after o, wrapping around.
func (o Order) Next() Order {
	for i, cand := range Orders {
		if cand == o {
			return Orders[(i+1)%len(Orders)]
		}
	}
	return OrderAscending
}

// ParseOrder parses an order name. English names, short forms and the
// romanized Japanese names are accepted.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "agari":
		return OrderAscending, nil
	case "desc", "descending", "sagari":
		return OrderDescending, nil
	case "random", "shuffle", "barabara":
		return OrderRandom, nil
	default:
		return "", fmt.Errorf("unknown order %q: must be ascending, descending or random", s)
	}
}

// ValidSegment reports whether n can be used as a segment.
func ValidSegment(n int) bool {
	return n >= MinSegment && n <= MaxSegment
}
