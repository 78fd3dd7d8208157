// Package san formats moves in short algebraic notation (SAN), the conventional human-readable
// move format: piece letter, disambiguation, capture marker, destination square, promotion and
// a check/checkmate suffix.
package san

import (
	"strings"

	"github.com/herohde/morlock/pkg/board"
)

// Format renders m -- a legal move in the position held by b -- in SAN. b is not mutated: the
// check/checkmate suffix is determined by forking b and playing the move.
func Format(b *board.Board, m board.Move) string {
	if m.IsCastle() {
		return withSuffix(b, m, m.String())
	}

	var sb strings.Builder
	if m.Piece == board.Pawn {
		if m.IsCapture() {
			sb.WriteString(m.From.File().String())
		}
	} else {
		sb.WriteString(pieceLetter(m.Piece))
		sb.WriteString(disambiguate(b, m))
	}

	if m.IsCapture() {
		sb.WriteRune('x')
	}
	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteRune('=')
		sb.WriteString(pieceLetter(m.Promotion))
	}

	return withSuffix(b, m, sb.String())
}

// disambiguate returns the minimal file/rank/square qualifier needed to distinguish m.From
// from other legal origins of a same-type, same-destination move.
func disambiguate(b *board.Board, m board.Move) string {
	var sameFile, sameRank bool
	ambiguous := false

	for _, o := range b.Position().LegalMoves(b.Turn()) {
		if o.Piece != m.Piece || o.To != m.To || o.From == m.From {
			continue
		}
		ambiguous = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

func withSuffix(b *board.Board, m board.Move, san string) string {
	fork := b.Fork()
	if !fork.PushMove(m) {
		return san
	}
	if !fork.Position().IsChecked(fork.Turn()) {
		return san
	}
	if len(fork.Position().LegalMoves(fork.Turn())) == 0 {
		return san + "#"
	}
	return san + "+"
}

func pieceLetter(p board.Piece) string {
	switch p {
	case board.Knight:
		return "N"
	case board.Bishop:
		return "B"
	case board.Rook:
		return "R"
	case board.Queen:
		return "Q"
	case board.King:
		return "K"
	default:
		return ""
	}
}

// FormatMoves renders a move sequence as space-separated SAN, applying each move to b in turn
// (a fork, so the caller's board is untouched).
func FormatMoves(b *board.Board, ms []board.Move) string {
	fork := b.Fork()

	var parts []string
	for _, m := range ms {
		parts = append(parts, Format(fork, m))
		if !fork.PushMove(m) {
			break
		}
	}
	return strings.Join(parts, " ")
}
