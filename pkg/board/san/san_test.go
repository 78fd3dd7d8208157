package san_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/herohde/morlock/pkg/board/san"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		fen      string
		move     string
		expected string
	}{
		{fen.Initial, "e2e4", "e4"},
		{fen.Initial, "g1f3", "Nf3"},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "f3e5", "Nxe5"},
		{"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "d1h5", "Qh5"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
	}

	for _, tt := range tests {
		b, err := fen.NewBoard(tt.fen)
		require.NoError(t, err)

		candidate, err := board.ParseMove(tt.move)
		require.NoError(t, err)

		var found board.Move
		for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
			if candidate.Equals(m) {
				found = m
				break
			}
		}
		assert.Equal(t, tt.expected, san.Format(b, found))
	}
}

func TestFormatCheckmate(t *testing.T) {
	// Fool's mate: 1. f3 e5 2. g4 Qh4#.
	b, err := fen.NewBoard("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	require.NoError(t, err)

	candidate, err := board.ParseMove("d8h4")
	require.NoError(t, err)

	var found board.Move
	for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
		if candidate.Equals(m) {
			found = m
			break
		}
	}
	assert.Equal(t, "Qh4#", san.Format(b, found))
}

func TestFormatMoves(t *testing.T) {
	initial, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	got := san.FormatMoves(initial, resolve(t, fen.Initial, "e2e4", "e7e5", "g1f3"))
	assert.Equal(t, "e4 e5 Nf3", got)
}

// resolve turns UCI move strings into fully-populated board.Move values by replaying them
// against the given starting position, one pseudo-legal-move lookup at a time.
func resolve(t *testing.T, start string, uci ...string) []board.Move {
	t.Helper()

	b, err := fen.NewBoard(start)
	require.NoError(t, err)

	var ret []board.Move
	for _, str := range uci {
		candidate, err := board.ParseMove(str)
		require.NoError(t, err)

		var found board.Move
		ok := false
		for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
			if candidate.Equals(m) {
				found, ok = m, true
				break
			}
		}
		require.True(t, ok)
		require.True(t, b.PushMove(found))
		ret = append(ret, found)
	}
	return ret
}
