package searcher

import (
	"numgame/experiments/metrics"
	"numgame/game"
	"slices"
)

// NodeID is a stable handle to a state in a Tree.
type NodeID int

type node struct {
	state    game.State
	children []NodeID // Ordered by ascending factor
}

// Tree is the DAG of states reachable from a root. States with equal
// (number, points, bank, level) share a single node.
type Tree struct {
	rules   *game.Rules
	nodes   []node
	index   map[game.State]NodeID
	metrics metrics.Collector
}

// BuildTree expands root depth-first. The root is always expanded; depth
// only limits how many plies are unrolled below each newly found node.
// Terminal states are never expanded.
func BuildTree(rules *game.Rules, root game.State, depth int) *Tree {
	return buildTree(rules, root, depth, metrics.NewDummyCollector())
}

func buildTree(rules *game.Rules, root game.State, depth int, collector metrics.Collector) *Tree {
	t := &Tree{
		rules:   rules,
		index:   make(map[game.State]NodeID),
		metrics: collector,
	}
	t.expand(t.add(root), depth)
	return t
}

func (t *Tree) add(state game.State) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{state: state})
	t.index[state] = id
	t.metrics.AddNode()
	return id
}

func (t *Tree) expand(id NodeID, depth int) {
	state := t.nodes[id].state
	if t.rules.IsTerminal(state) {
		return
	}
	for _, factor := range t.rules.Factors() {
		next := t.rules.Next(state, factor)
		if existing, ok := t.index[next]; ok {
			// Equal tuples sit at the same level, so the existing node already
			// got the same depth budget
			t.nodes[id].children = append(t.nodes[id].children, existing)
			continue
		}
		child := t.add(next)
		t.nodes[id].children = append(t.nodes[id].children, child)
		if depth > 1 {
			t.expand(child, depth-1)
		}
	}
}

func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of distinct states in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) State(id NodeID) game.State {
	return t.nodes[id].state
}

func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.nodes[id].children)
}

func (t *Tree) Lookup(state game.State) (NodeID, bool) {
	id, ok := t.index[state]
	return id, ok
}

// Factor converts a child position of the root into the factor that reaches it.
func (t *Tree) Factor(index int) int {
	return t.rules.MinFactor + index
}
