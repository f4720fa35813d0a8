package game

import "errors"

var (
	ErrInvalidFactor = errors.New("invalid factor")
	ErrInvalidSeed   = errors.New("invalid starting number")
	ErrGameOver      = errors.New("game is over - no moves allowed")
)
