package searcher

import (
	"math"
	"numgame/experiments/metrics"
	"numgame/game"
)

type Result struct {
	Tree  *Tree
	Index int     // Position of the chosen child among the root's children
	Value float64 // Back-propagated value of the root

	// Values holds the back-propagated value of every node the search
	// annotated: the root and each child that improved its parent's best.
	Values  map[NodeID]float64
	Metrics metrics.SearchMetric
}

// Search walks tree bottom-up. Even levels maximize, odd levels minimize.
// Ties keep the earlier child, so both algorithms report the same move.
func Search(tree *Tree, algorithm Algorithm, evaluate game.Evaluate) Result {
	return search(tree, algorithm, evaluate, metrics.NewDummyCollector())
}

func search(tree *Tree, algorithm Algorithm, evaluate game.Evaluate, collector metrics.Collector) Result {
	root := tree.Root()
	if len(tree.nodes[root].children) == 0 {
		panic("root has no children")
	}

	w := walker{
		tree:     tree,
		evaluate: evaluate,
		metrics:  collector,
		prune:    algorithm == AlphaBeta,
		values:   make(map[NodeID]float64),
	}
	value, index := w.visit(root, math.Inf(-1), math.Inf(1))
	if index < 0 {
		panic("search found no move at the root")
	}

	return Result{
		Tree:   tree,
		Index:  index,
		Value:  value,
		Values: w.values,
	}
}

type walker struct {
	tree     *Tree
	evaluate game.Evaluate
	metrics  metrics.Collector
	prune    bool
	values   map[NodeID]float64
}

// visit returns the value of id and the position of its best child, -1 for leaves.
func (w *walker) visit(id NodeID, alpha, beta float64) (float64, int) {
	n := w.tree.nodes[id]
	if len(n.children) == 0 {
		w.metrics.AddEvaluation()
		return w.evaluate(n.state), -1
	}

	maximizing := n.state.Level%2 == 0
	best, index := math.Inf(1), -1
	if maximizing {
		best = math.Inf(-1)
	}

	for i, child := range n.children {
		value, _ := w.visit(child, alpha, beta)
		// The first child is always taken so that infinite or NaN scores
		// still leave a move
		if index < 0 || (maximizing && value > best) || (!maximizing && value < best) {
			best, index = value, i
			w.values[child] = value
		}

		if !w.prune {
			continue
		}
		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if alpha >= beta {
			if i < len(n.children)-1 {
				w.metrics.AddCutoff()
			}
			break
		}
	}

	w.values[id] = best
	return best, index
}
