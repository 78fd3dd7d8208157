// Package search contains game tree search functionality and utilities: alpha-beta pruning,
// quiescence search, move ordering and a transposition table.
package search

import (
	"context"
	"errors"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
)

// ErrHalted is an error indicating that the search was halted before completion.
var ErrHalted = errors.New("search halted")

// Context carries the per-call search parameters that would otherwise have to thread through
// every recursive call: the alpha-beta window, the transposition table and evaluation noise.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Noise       eval.Random

	// Ponder, if non-empty, is a move sequence to explore first regardless of move ordering.
	Ponder []board.Move
}

// Search implements search of the game tree to a fixed depth, returning the node count,
// the score and the principal variation for the side to move. Thread-safe.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch implements a horizon-extending search that settles "noisy" positions (those with
// pending captures or checks) before handing back a static score. Thread-safe.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

// Evaluator is a static position evaluator that is aware of the current search context, e.g.
// to inject evaluation noise. Thread-safe.
type Evaluator interface {
	Evaluate(ctx context.Context, sctx *Context, b *board.Board) eval.Pawns
}

// ZeroPly adapts a plain eval.Evaluator into a QuietSearch that performs no further search: the
// "horizon" is the current position itself.
type ZeroPly struct {
	Eval eval.Evaluator
}

func (z ZeroPly) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	return 1, eval.HeuristicScore(z.Eval.Evaluate(ctx, b))
}

// NoisyEval adapts a plain eval.Evaluator into a search.Evaluator that adds the context's
// configured randomness to the static evaluation, to avoid always playing the same move among
// equally-valued ones.
type NoisyEval struct {
	Eval eval.Evaluator
}

func (n NoisyEval) Evaluate(ctx context.Context, sctx *Context, b *board.Board) eval.Pawns {
	return n.Eval.Evaluate(ctx, b) + sctx.Noise.Evaluate(ctx, b)
}
