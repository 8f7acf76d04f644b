package problemgen

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(segment int) []Problem {
	var ps []Problem
	for m := 1; m <= 9; m++ {
		ps = append(ps, Problem{Multiplicand: segment, Multiplier: m})
	}
	return ps
}

func TestGenerate_Ascending(t *testing.T) {
	for seg := MinSegment; seg <= MaxSegment; seg++ {
		set := Generate(seg, OrderAscending, nil)
		assert.Equal(t, seg, set.Segment)
		assert.Equal(t, ascending(seg), set.Problems, "segment %d", seg)
	}
}

func TestGenerate_Descending(t *testing.T) {
	for seg := MinSegment; seg <= MaxSegment; seg++ {
		want := ascending(seg)
		slices.Reverse(want)

		set := Generate(seg, OrderDescending, nil)
		assert.Equal(t, want, set.Problems, "segment %d", seg)
	}
}

func TestGenerate_RandomIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for seg := MinSegment; seg <= MaxSegment; seg++ {
		set := Generate(seg, OrderRandom, rng)
		require.Len(t, set.Problems, SetSize)
		assert.ElementsMatch(t, ascending(seg), set.Problems, "segment %d", seg)
		for _, p := range set.Problems {
			assert.Equal(t, seg, p.Multiplicand)
		}
	}
}

func TestGenerate_RandomReshufflesEveryCall(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	first := Generate(4, OrderRandom, rng)

	// 9! orderings; twenty identical draws in a row would mean the shuffle is cached.
	differs := false
	for i := 0; i < 20; i++ {
		if !slices.Equal(first.Problems, Generate(4, OrderRandom, rng).Problems) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "random order should reshuffle on every generation")
}

func TestGenerate_RandomIsRoughlyUniform(t *testing.T) {
	// Count how often each multiplier lands in position 0. A comparator-based
	// shuffle skews this heavily; Fisher-Yates keeps every count near n/9.
	rng := rand.New(rand.NewPCG(42, 99))
	const n = 9000
	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		set := Generate(2, OrderRandom, rng)
		counts[set.Problems[0].Multiplier]++
	}
	for m := 1; m <= 9; m++ {
		assert.InDelta(t, n/9, counts[m], 200, "multiplier %d in first position", m)
	}
}

func TestGenerate_NilRNG(t *testing.T) {
	set := Generate(9, OrderRandom, nil)
	assert.ElementsMatch(t, ascending(9), set.Problems)
}

func TestGenerate_ReturnsFreshSlice(t *testing.T) {
	a := Generate(3, OrderAscending, nil)
	b := Generate(3, OrderAscending, nil)
	a.Problems[0] = Problem{Multiplicand: 0, Multiplier: 0}
	assert.Equal(t, Problem{Multiplicand: 3, Multiplier: 1}, b.Problems[0])
}

func TestProblem_AnswerAndString(t *testing.T) {
	p := Problem{Multiplicand: 7, Multiplier: 8}
	assert.Equal(t, 56, p.Answer())
	assert.Equal(t, "7 × 8", p.String())
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"ascending", OrderAscending, false},
		{"ASC", OrderAscending, false},
		{"agari", OrderAscending, false},
		{"descending", OrderDescending, false},
		{"sagari", OrderDescending, false},
		{" random ", OrderRandom, false},
		{"barabara", OrderRandom, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrder_NextCycles(t *testing.T) {
	assert.Equal(t, OrderDescending, OrderAscending.Next())
	assert.Equal(t, OrderRandom, OrderDescending.Next())
	assert.Equal(t, OrderAscending, OrderRandom.Next())
	assert.Equal(t, OrderAscending, Order("bogus").Next())
}

func TestValidSegment(t *testing.T) {
	assert.False(t, ValidSegment(0))
	assert.True(t, ValidSegment(1))
	assert.True(t, ValidSegment(9))
	assert.False(t, ValidSegment(10))
}
