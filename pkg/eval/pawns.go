package eval

import "fmt"

// Pawns is a signed static position value denominated in pawns, positive favoring the side to move. It is
// the unit a plain Evaluator returns; Score is the richer, search-facing type built from it via
// HeuristicScore.
type Pawns float32

func (p Pawns) String() string {
	return fmt.Sprintf("%.2f", float32(p))
}
