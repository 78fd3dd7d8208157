// Package perft counts leaf nodes of the legal move tree to a fixed depth, the standard
// correctness oracle for a chess move generator. See: https://www.chessprogramming.org/Perft_Results.
package perft

import "github.com/herohde/morlock/pkg/board"

// Count returns the number of leaf nodes reachable from pos in exactly depth plies, counting
// each legal move sequence exactly once.
func Count(pos *board.Position, turn board.Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range pos.PseudoLegalMoves(turn) {
		if next, ok := pos.Move(m); ok {
			nodes += Count(next, turn.Opponent(), depth-1)
		}
	}
	return nodes
}

// Divide returns the leaf count under each root move, for debugging a move generator
// discrepancy against a reference perft value.
func Divide(pos *board.Position, turn board.Color, depth int) map[board.Move]uint64 {
	ret := make(map[board.Move]uint64)
	for _, m := range pos.PseudoLegalMoves(turn) {
		if next, ok := pos.Move(m); ok {
			ret[m] = Count(next, turn.Opponent(), depth-1)
		}
	}
	return ret
}
