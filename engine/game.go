package engine

import (
	"errors"
	"fmt"
	"io"
	"numgame/game"
	"numgame/searcher"
)

var ErrGameNotOver = errors.New("game is not over yet")

// Turn records one applied move.
type Turn struct {
	Player game.Player
	Factor int
	State  game.State // State after the move
}

// Game owns the live state of one match. The state is replaced, never
// mutated, on every move.
type Game struct {
	rules    *game.Rules
	searcher *searcher.Searcher
	seed     int
	state    game.State
	players  game.TurnOrder
	history  []Turn
}

// NewGame starts a game from seed. Options configure the computer's search.
func NewGame(rules *game.Rules, first game.Player, seed int, options ...searcher.Option) (*Game, error) {
	if !rules.IsValidSeed(seed) {
		return nil, fmt.Errorf("%w: %d is not in [%d, %d]", game.ErrInvalidSeed, seed, rules.MinStartNumber, rules.MaxStartNumber)
	}
	if first != game.Human && first != game.Computer {
		return nil, fmt.Errorf("unknown starting player %s", first)
	}

	return &Game{
		rules:    rules,
		searcher: searcher.NewSearcher(rules, options...),
		seed:     seed,
		state:    game.NewState(seed),
		players:  game.NewTurnOrder(first),
	}, nil
}

func (g *Game) Rules() *game.Rules {
	return g.rules
}

func (g *Game) Seed() int {
	return g.seed
}

func (g *Game) State() game.State {
	return g.state
}

func (g *Game) Players() game.TurnOrder {
	return g.players
}

func (g *Game) Algorithm() searcher.Algorithm {
	return g.searcher.Algorithm()
}

// Evaluate returns the heuristic the computer searches with.
func (g *Game) Evaluate() game.Evaluate {
	return g.searcher.Evaluate()
}

func (g *Game) History() []Turn {
	return append([]Turn(nil), g.history...)
}

func (g *Game) CurrentPlayer() game.Player {
	return g.players.ToMove(g.state)
}

func (g *Game) IsFinished() bool {
	return g.rules.IsTerminal(g.state)
}

// Play applies factor for the player to move.
func (g *Game) Play(factor int) error {
	player := g.CurrentPlayer()
	next, err := g.rules.Play(g.state, factor)
	if err != nil {
		return err
	}
	g.state = next
	g.history = append(g.history, Turn{Player: player, Factor: factor, State: next})
	return nil
}

// ComputeMove searches from the current state without playing the result.
func (g *Game) ComputeMove() (int, searcher.Result, error) {
	return g.searcher.ComputeMove(g.state)
}

// ComputerMove computes a move and plays it.
func (g *Game) ComputerMove() (int, error) {
	factor, _, err := g.ComputeMove()
	if err != nil {
		return 0, err
	}
	return factor, g.Play(factor)
}

func (g *Game) Winner() (game.Player, error) {
	if !g.IsFinished() {
		return 0, ErrGameNotOver
	}
	return g.players.Winner(g.state), nil
}

// Trace expands the whole remaining game, searches it with the game's
// algorithm and prints it to w.
func (g *Game) Trace(w io.Writer) error {
	tree := searcher.BuildTree(g.rules, g.state, searcher.FullDepth)
	evaluate := g.Evaluate()
	if g.IsFinished() {
		return tree.Print(w, evaluate, nil)
	}
	result := searcher.Search(tree, g.Algorithm(), evaluate)
	return tree.Print(w, evaluate, result.Values)
}
