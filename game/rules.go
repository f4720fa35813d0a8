package game

import (
	"fmt"
	"numgame/utils"
)

// Rules holds the constants of a game. The zero value is unusable, use
// NewStandardRules or fill every field.
type Rules struct {
	EndNumber      int // A state with Number >= EndNumber is terminal
	MinStartNumber int
	MaxStartNumber int
	MinFactor      int
	MaxFactor      int
}

func NewStandardRules() *Rules {
	return &Rules{
		EndNumber:      3000,
		MinStartNumber: 20,
		MaxStartNumber: 30,
		MinFactor:      3,
		MaxFactor:      5,
	}
}

// Factors returns the legal factors in ascending order.
func (r *Rules) Factors() []int {
	factors := make([]int, 0, max(r.MaxFactor-r.MinFactor+1, 0))
	for f := r.MinFactor; f <= r.MaxFactor; f++ {
		factors = append(factors, f)
	}
	return factors
}

func (r *Rules) IsValidFactor(factor int) bool {
	return utils.FindIndex(r.Factors(), factor) >= 0
}

func (r *Rules) IsValidSeed(seed int) bool {
	return seed >= r.MinStartNumber && seed <= r.MaxStartNumber
}

func (r *Rules) IsTerminal(s State) bool {
	return s.Number >= r.EndNumber
}

// MaxNumber bounds every reachable number: the last move starts below
// EndNumber and multiplies by at most MaxFactor.
func (r *Rules) MaxNumber() int {
	return r.EndNumber * r.MaxFactor
}

// Next returns the successor of s after multiplying by factor. The factor
// must be legal; Play checks that for untrusted input.
func (r *Rules) Next(s State, factor int) State {
	next := State{
		Number: s.Number * factor,
		Points: s.Points,
		Bank:   s.Bank,
		Level:  s.Level + 1,
	}
	if next.Number%2 == 0 {
		next.Points++
	} else {
		next.Points--
	}
	if next.Number%5 == 0 {
		next.Bank++
	}
	if r.IsTerminal(next) {
		next.Points += settlement(next.Points, next.Bank)
	}
	return next
}

// settlement folds the bank into the points once, when the game ends.
func settlement(points, bank int) int {
	if points%2 == 0 {
		return -bank
	}
	return bank
}

// Play validates the move and returns the successor of s.
func (r *Rules) Play(s State, factor int) (State, error) {
	if r.IsTerminal(s) {
		return s, ErrGameOver
	}
	if !r.IsValidFactor(factor) {
		return s, fmt.Errorf("%w: %d is not in [%d, %d]", ErrInvalidFactor, factor, r.MinFactor, r.MaxFactor)
	}
	return r.Next(s, factor), nil
}
