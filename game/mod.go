package game

import "fmt"

// State is one snapshot of the game. States are values: two states are
// equivalent iff all of their fields are equal, so State can be compared
// with == and used as a map key.
type State struct {
	Number int // Running value, strictly increasing
	Points int // +1 for every even result, -1 for every odd one
	Bank   int // +1 for every result divisible by 5
	Level  int // Ply depth from the game's root
}

// NewState returns the root state of a game started from seed.
func NewState(seed int) State {
	return State{Number: seed}
}

func (s State) String() string {
	return fmt.Sprintf("number=%d points=%d bank=%d level=%d", s.Number, s.Points, s.Bank, s.Level)
}

// Evaluates the desirability of a state from the maximizing side's
// perspective. The searcher applies it to leaves of the game tree.
type Evaluate func(State) float64
