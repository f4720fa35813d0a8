package experiments

import "numgame/experiments/metrics"

type Summary struct {
	Moves       int
	Nodes       int
	Evaluations int
	Cutoffs     int
}

func (s Summary) EvaluationsPerMove() float64 {
	if s.Moves == 0 {
		return 0
	}
	return float64(s.Evaluations) / float64(s.Moves)
}

func (s Summary) CutoffsPerMove() float64 {
	if s.Moves == 0 {
		return 0
	}
	return float64(s.Cutoffs) / float64(s.Moves)
}

// Summarize totals the search work of moves per algorithm.
func Summarize(moves []metrics.MoveRecord) map[string]Summary {
	summaries := make(map[string]Summary)
	for _, m := range moves {
		s := summaries[m.Algorithm]
		s.Moves++
		s.Nodes += m.Nodes
		s.Evaluations += m.Evaluations
		s.Cutoffs += m.Cutoffs
		summaries[m.Algorithm] = s
	}
	return summaries
}
