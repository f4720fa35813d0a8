package player

import (
	"context"
	"fmt"
	"io"
	"numgame/engine"
	"numgame/experiments/metrics"
	"numgame/searcher"
)

// Console is the human's agent: it reads factors from a prompter.
type Console struct {
	prompter *Prompter
}

func NewConsole(prompter *Prompter) *Console {
	return &Console{prompter: prompter}
}

func (c *Console) FindMove(ctx context.Context, g *engine.Game) (int, metrics.SearchMetric, error) {
	s := g.State()
	fmt.Fprintf(c.prompter.out, "number: %d | points: %d | bank: %d\n", s.Number, s.Points, s.Bank)
	factor, err := c.prompter.ChooseFactor(g.Rules())
	return factor, metrics.SearchMetric{}, err
}

// Computer searches the game tree for its move. With a trace writer it
// also prints every searched tree.
type Computer struct {
	searcher *searcher.Searcher
	trace    io.Writer
}

// NewComputer searches with the game's own algorithm and depth.
func NewComputer(trace io.Writer) *Computer {
	return &Computer{trace: trace}
}

// NewComputerWith searches with s, so two computers in one game can differ.
func NewComputerWith(s *searcher.Searcher, trace io.Writer) *Computer {
	return &Computer{searcher: s, trace: trace}
}

func (c *Computer) FindMove(ctx context.Context, g *engine.Game) (int, metrics.SearchMetric, error) {
	var (
		factor int
		result searcher.Result
		err    error
	)
	if c.searcher != nil {
		factor, result, err = c.searcher.ComputeMove(g.State())
	} else {
		factor, result, err = g.ComputeMove()
	}
	if err != nil {
		return 0, metrics.SearchMetric{}, err
	}
	if c.trace != nil {
		evaluate := g.Evaluate()
		if c.searcher != nil {
			evaluate = c.searcher.Evaluate()
		}
		if err := result.Tree.Print(c.trace, evaluate, result.Values); err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("failed to print search tree: %w", err)
		}
	}
	return factor, result.Metrics, nil
}
