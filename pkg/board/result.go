package board

import "fmt"

// Outcome represents the decided/undecided outcome of a game. 2 bits.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// Loss returns the outcome of the given color losing, i.e. the opponent winning.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}

// Reason explains why a Result was adjudicated the way it was.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition3 // claimable threefold repetition
	Repetition5 // mandatory fivefold repetition
	NoProgress  // fifty-move rule, no capture or pawn move in 100 plies
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition3:
		return "threefold repetition"
	case Repetition5:
		return "fivefold repetition"
	case NoProgress:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "?"
	}
}

// Result represents the result of a game, if decided, and why.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) IsDecided() bool {
	return r.Outcome != Undecided
}

func (r Result) String() string {
	if r.Reason == NoReason {
		return r.Outcome.String()
	}
	return fmt.Sprintf("%v (%v)", r.Outcome, r.Reason)
}
