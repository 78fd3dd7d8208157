package pgn_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/herohde/morlock/pkg/board/pgn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	start, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	moves := resolve(t, fen.Initial, "e2e4", "e7e5", "g1f3", "b8c6")

	tags := []pgn.Tag{
		{Name: "Event", Value: "Casual game"},
		{Name: "White", Value: "morlock"},
		{Name: "Black", Value: "morlock"},
	}

	out := pgn.Encode(start, tags, moves, board.Undecided)

	got, err := pgn.Decode(start, out)
	require.NoError(t, err)

	assert.Equal(t, moves, got.Moves)
	assert.Equal(t, board.Undecided, got.Result)

	event, ok := got.Tag("Event")
	assert.True(t, ok)
	assert.Equal(t, "Casual game", event)
}

func TestEncodeDecodeCheckmate(t *testing.T) {
	start, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	moves := resolve(t, fen.Initial, "f2f3", "e7e5", "g2g4", "d8h4")

	out := pgn.Encode(start, nil, moves, board.BlackWins)

	got, err := pgn.Decode(start, out)
	require.NoError(t, err)

	assert.Equal(t, moves, got.Moves)
	assert.Equal(t, board.BlackWins, got.Result)
}

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
