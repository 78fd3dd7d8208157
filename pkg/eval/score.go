package eval

import "fmt"

// Score is a signed search score in centipawns, from the perspective of the side to move.
// Besides material/positional evaluation it also encodes forced mate distances: a score whose
// magnitude exceeds mateThreshold represents "mate in N plies", where N is zero at the mated
// position and grows by one per ply back towards the root. The zero value is Invalid -- a sentinel for "unset",
// distinct from ZeroScore, an actual balanced evaluation -- used by TranspositionTable misses
// and not-yet-bounded search windows.
type Score struct {
	valid bool
	cp    int32
}

const (
	mateValue    = 1 << 20 // cp magnitude of an immediate mate
	maxPly       = 1000    // plies reserved below mateValue for mate distance encoding
	mateThreshold = mateValue - maxPly
)

var (
	// ZeroScore is a balanced, drawn evaluation.
	ZeroScore = Score{valid: true, cp: 0}
	// MateScore is the score of delivering mate right now.
	MateScore = Score{valid: true, cp: mateValue}
	// NegInfScore is lower than any real or mate score: a safe alpha-beta window bound.
	NegInfScore = Score{valid: true, cp: -(mateValue + maxPly + 1)}
	// InfScore is higher than any real or mate score: a safe alpha-beta window bound.
	InfScore = Score{valid: true, cp: mateValue + maxPly + 1}
	// InvalidScore is the unset sentinel. Equal to the zero value of Score.
	InvalidScore Score
)

// HeuristicScore converts a Pawns-denominated static evaluation into a Score.
func HeuristicScore(p Pawns) Score {
	return Score{valid: true, cp: int32(p * 100)}
}

// MateInXScore returns the score of delivering mate in the given number of plies.
func MateInXScore(plies int) Score {
	return Score{valid: true, cp: mateValue - int32(plies)}
}

// IsInvalid returns true iff the score is the unset sentinel.
func (s Score) IsInvalid() bool {
	return !s.valid
}

// Negate flips the score to the opponent's perspective.
func (s Score) Negate() Score {
	return Score{valid: s.valid, cp: -s.cp}
}

// Less returns true iff s is strictly less than o.
func (s Score) Less(o Score) bool {
	return s.cp < o.cp
}

// MateDistance returns the signed number of plies to forced mate -- positive if the side to
// move delivers it, negative if it is delivered against them -- and false if s is not a mate
// score.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s.valid && s.cp > mateThreshold:
		return int(mateValue - s.cp), true
	case s.valid && s.cp < -mateThreshold:
		return -int(mateValue + s.cp), true
	default:
		return 0, false
	}
}

func (s Score) String() string {
	if !s.valid {
		return "?"
	}
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate(%+d)", d)
	}
	return fmt.Sprintf("%.2f", float64(s.cp)/100)
}

// IncrementMateDistance adjusts a mate score by one ply as it is propagated up the search tree.
// Non-mate scores are unaffected.
func IncrementMateDistance(s Score) Score {
	switch {
	case !s.valid:
		return s
	case s.cp > mateThreshold:
		return Score{valid: true, cp: s.cp - 1}
	case s.cp < -mateThreshold:
		return Score{valid: true, cp: s.cp + 1}
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if b.Less(a) {
		return b
	}
	return a
}
