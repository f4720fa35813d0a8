package searcher

import (
	"numgame/experiments/metrics"
	"numgame/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks the computer's factor. It is not safe for concurrent use
// when built WithMetrics.
type Searcher struct {
	rules     *game.Rules
	depth     int
	algorithm Algorithm
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		if algorithm == Minimax || algorithm == AlphaBeta {
			s.algorithm = algorithm
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(rules *game.Rules, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		rules:     rules,
		depth:     DefaultDepth,
		algorithm: Minimax,
		evaluate:  rules.Evaluate,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

func (s *Searcher) Depth() int {
	return s.depth
}

// ComputeMove builds a depth-bounded tree from state, searches it and
// returns the chosen factor.
func (s *Searcher) ComputeMove(state game.State) (int, Result, error) {
	if s.rules.IsTerminal(state) {
		return 0, Result{}, game.ErrGameOver
	}

	s.metrics.Start(s.algorithm.String(), s.depth)
	tree := buildTree(s.rules, state, s.depth, s.metrics)
	result := search(tree, s.algorithm, s.evaluate, s.metrics)
	result.Metrics = s.metrics.Complete()

	factor := tree.Factor(result.Index)
	log.Debug().
		Stringer("algorithm", s.algorithm).
		Int("depth", s.depth).
		Int("nodes", tree.Len()).
		Int("factor", factor).
		Float64("value", result.Value).
		Msg("computed move")

	return factor, result, nil
}

func (s *Searcher) Evaluate() game.Evaluate {
	return s.evaluate
}
