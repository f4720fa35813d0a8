// meta/meta.go
package meta

// END_NUMBER is the threshold that ends a game.
const END_NUMBER = 3000

// MIN_START_NUMBER and MAX_START_NUMBER bound the seed.
const MIN_START_NUMBER = 20
const MAX_START_NUMBER = 30

// MIN_FACTOR and MAX_FACTOR bound the factor of a move.
const MIN_FACTOR = 3
const MAX_FACTOR = 5

// SEARCH_DEPTH is the computer's search depth during play.
const SEARCH_DEPTH = 2
