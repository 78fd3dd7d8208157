// Package pgn encodes and decodes games in a PGN-equivalent format: header tag pairs, numbered
// SAN movetext and a trailing result token.
package pgn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/san"
)

// Tag is a single PGN header tag pair, e.g. {"Event", "Casual game"}.
type Tag struct {
	Name, Value string
}

// Game is a parsed game: its header tags, in file order, and the moves played from the
// position it started at.
type Game struct {
	Tags   []Tag
	Moves  []board.Move
	Result board.Outcome
}

// Tag looks up a header tag by name.
func (g Game) Tag(name string) (string, bool) {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Encode renders the moves played from b's current position as PGN: header tag pairs followed
// by numbered SAN movetext and a result token. b is not mutated.
func Encode(b *board.Board, tags []Tag, moves []board.Move, result board.Outcome) string {
	var sb strings.Builder
	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("[%v %q]\n", t.Name, t.Value))
	}
	sb.WriteString("\n")

	fork := b.Fork()
	for i, m := range moves {
		switch {
		case fork.Turn() == board.White:
			sb.WriteString(fmt.Sprintf("%v. ", fork.FullMoves()))
		case i == 0:
			sb.WriteString(fmt.Sprintf("%v... ", fork.FullMoves()))
		}

		sb.WriteString(san.Format(fork, m))
		sb.WriteString(" ")

		if !fork.PushMove(m) {
			break
		}
	}
	sb.WriteString(result.String())
	return sb.String()
}

var (
	tagLine    = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	moveNumber = regexp.MustCompile(`^\d+\.(\.\.)?$`)
)

// Decode parses a PGN-equivalent game, replaying its SAN movetext against b's current position
// to recover the underlying moves. b is not mutated.
func Decode(b *board.Board, pgn string) (Game, error) {
	var g Game

	fork := b.Fork()
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := tagLine.FindStringSubmatch(line); m != nil {
			g.Tags = append(g.Tags, Tag{Name: m[1], Value: m[2]})
			continue
		}

		for _, tok := range strings.Fields(line) {
			switch {
			case moveNumber.MatchString(tok):
				continue
			case tok == board.Undecided.String(), tok == board.WhiteWins.String(),
				tok == board.BlackWins.String(), tok == board.Draw.String():
				g.Result = outcomeOf(tok)
				continue
			}

			move, ok := matchSAN(fork, tok)
			if !ok {
				return Game{}, fmt.Errorf("invalid or illegal SAN move: %q", tok)
			}
			if !fork.PushMove(move) {
				return Game{}, fmt.Errorf("illegal move: %q", tok)
			}
			g.Moves = append(g.Moves, move)
		}
	}
	return g, nil
}

func matchSAN(b *board.Board, tok string) (board.Move, bool) {
	for _, m := range b.Position().LegalMoves(b.Turn()) {
		if san.Format(b, m) == tok {
			return m, true
		}
	}
	return board.Move{}, false
}

func outcomeOf(tok string) board.Outcome {
	switch tok {
	case board.WhiteWins.String():
		return board.WhiteWins
	case board.BlackWins.String():
		return board.BlackWins
	case board.Draw.String():
		return board.Draw
	default:
		return board.Undecided
	}
}
