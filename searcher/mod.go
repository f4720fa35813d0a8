package searcher

import (
	"fmt"
	"strings"
)

// FullDepth expands every branch until it reaches a terminal state. It is
// meant for diagnostic traces, not for play.
const FullDepth = 100000

// DefaultDepth is the search depth of interactive play.
const DefaultDepth = 2

type Algorithm int

const (
	Minimax Algorithm = iota + 1
	AlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "m", "minimax", "a", "alphabeta" or "alpha-beta" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "minimax":
		return Minimax, nil
	case "a", "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}
