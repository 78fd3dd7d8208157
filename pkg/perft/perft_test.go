package perft_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/herohde/morlock/pkg/perft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		fen      string
		depth    int
		expected uint64
	}{
		{fen.Initial, 5, 4865609},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
	}

	for _, tt := range tests {
		pos, turn, _, _, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		assert.Equalf(t, tt.expected, perft.Count(pos, turn, tt.depth), "failed: %v at depth %v", tt.fen, tt.depth)
	}
}
