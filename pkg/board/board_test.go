package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCastlingDoesNotResetNoProgress asserts that castling, unlike a pawn move or a capture,
// does not reset the fifty-move (no-progress) counter.
func TestCastlingDoesNotResetNoProgress(t *testing.T) {
	b, err := fen.NewBoard("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 12 1", "e1g1")
	require.NoError(t, err)

	assert.Equal(t, 13, b.NoProgress())
}

// TestCapturesAndPawnMovesResetNoProgress asserts the converse: a capture or pawn move does
// reset the counter.
func TestCapturesAndPawnMovesResetNoProgress(t *testing.T) {
	b, err := fen.NewBoard("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 12 3", "f3e5")
	require.NoError(t, err)
	assert.Equal(t, 0, b.NoProgress())

	b, err = fen.NewBoard(fen.Initial, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, 0, b.NoProgress())
}

// TestFiftyMoveRuleNotDeferredByCastling adjudicates a draw at the fifty-move threshold even
// when a castling move was interleaved, since castling must not reset the counter.
func TestFiftyMoveRuleNotDeferredByCastling(t *testing.T) {
	b, err := fen.NewBoard("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 98 1", "e1g1", "e8c8")
	require.NoError(t, err)

	assert.Equal(t, 100, b.NoProgress())
	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.NoProgress, b.Result().Reason)
}
