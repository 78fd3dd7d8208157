package search_test

import (
	"context"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/search"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	// (1) Test that we use MSB for size only.

	tt := search.NewTranspositionTable(ctx, 0x1000)
	assert.Equal(t, tt.Size(), uint64(0x1000))
	tt2 := search.NewTranspositionTable(ctx, 0x1f00)
	assert.Equal(t, tt2.Size(), uint64(0x1000))

	// (2) Test read/write.

	a := board.ZobristHash(rand.Uint64())

	_, _, _, _, notok := tt.Read(a)
	assert.False(t, notok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	s := eval.HeuristicScore(2)
	_ = tt.Write(a, search.ExactBound, 5, 2, s, m)

	bound, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, bound, search.ExactBound)
	assert.Equal(t, depth, 2)
	assert.Equal(t, score, s)
	assert.Equal(t, move, m)

	_, _, _, _, notok = tt.Read(a ^ 0xff0000)
	assert.False(t, notok)

	// (2) Test replacement: within a generation, a shallower write is kept out and a
	// deeper-or-equal write takes the slot.

	norepl := tt.Write(a, search.ExactBound, 9, 1, eval.HeuristicScore(5), m)
	assert.False(t, norepl) // shallower depth: existing entry kept

	repl := tt.Write(a, search.ExactBound, 9, 3, eval.HeuristicScore(5), m)
	assert.True(t, repl) // deeper: replaces

	// (3) Test replacement: at equal depth, any bound takes the slot; at a shallower depth, an
	// Exact bound still takes over a non-Exact one.

	samedepth := tt.Write(a, search.UpperBound, 9, 3, eval.HeuristicScore(1), m)
	assert.True(t, samedepth)

	_ = tt.Write(a, search.UpperBound, 9, 5, eval.HeuristicScore(1), m)      // deeper, non-Exact
	exact := tt.Write(a, search.ExactBound, 9, 4, eval.HeuristicScore(1), m) // shallower, Exact
	assert.True(t, exact)

	// (4) Test replacement: a new generation always takes the slot, regardless of depth or bound.

	tt.NewGeneration()
	aged := tt.Write(a, search.UpperBound, 9, 1, eval.HeuristicScore(0), m)
	assert.True(t, aged)

	// (5) Test bound round-trip, including the fail-soft UpperBound kind.

	c := board.ZobristHash(rand.Uint64())
	_ = tt.Write(c, search.UpperBound, 1, 3, eval.HeuristicScore(-2), board.Move{})

	bound, _, score, _, ok = tt.Read(c)
	assert.True(t, ok)
	assert.Equal(t, search.UpperBound, bound)
	assert.Equal(t, eval.HeuristicScore(-2), score)
}
