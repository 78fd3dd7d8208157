package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZobristMoveMatchesFromScratch asserts that ZobristTable.Move's incremental update agrees
// with hashing the resulting position from scratch, for moves that change castling rights,
// capture, promote, castle, and move en passant -- the cases where the incremental path differs
// materially from a no-op update.
func TestZobristMoveMatchesFromScratch(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"pawn move keeps castling rights", fen.Initial, "e2e4"},
		{"rook move loses queenside castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1b1"},
		{"king move loses both castling rights mid-game", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1d1"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1"},
		{"capture", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "f3e5"},
		{"double pawn push sets en passant", fen.Initial, "e2e4"},
		{"promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := fen.NewBoard(tt.fen)
			require.NoError(t, err)

			candidate, err := board.ParseMove(tt.move)
			require.NoError(t, err)

			var found board.Move
			ok := false
			for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
				if candidate.Equals(m) {
					found, ok = m, true
					break
				}
			}
			require.True(t, ok, "move %v not found as pseudo-legal", tt.move)

			before := b.Hash()
			require.True(t, b.PushMove(found))

			zt := board.NewZobristTable(1)
			fromScratch := zt.Hash(b.Position(), b.Turn())

			assert.Equal(t, fromScratch, b.Hash())
			assert.Equal(t, fromScratch, zt.Move(before, positionBefore(t, tt.fen), found))
		})
	}
}

// positionBefore decodes the FEN's position, for use alongside ZobristTable.Move which takes the
// pre-move position.
func positionBefore(t *testing.T, f string) *board.Position {
	t.Helper()

	pos, _, _, _, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}
