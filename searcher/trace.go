package searcher

import (
	"bufio"
	"fmt"
	"io"
	"numgame/game"
	"strings"
)

// Print writes one line per path through the tree, indented by depth below
// the root. Each line shows the heuristic value of the state and, when
// values has an entry for it, the back-propagated value. A node linked from
// several parents is printed under each of them.
func (t *Tree) Print(w io.Writer, evaluate game.Evaluate, values map[NodeID]float64) error {
	bw := bufio.NewWriter(w)
	t.print(bw, evaluate, values, t.Root())
	return bw.Flush()
}

func (t *Tree) print(w *bufio.Writer, evaluate game.Evaluate, values map[NodeID]float64, id NodeID) {
	s := t.nodes[id].state
	indent := strings.Repeat("\t", s.Level-t.nodes[t.Root()].state.Level)
	fmt.Fprintf(w, "%snumber: %-5d points: %-2d bank: %d value: %-9.4f", indent, s.Number, s.Points, s.Bank, evaluate(s))
	if v, ok := values[id]; ok {
		fmt.Fprintf(w, " algorithm: %.4f", v)
	}
	w.WriteByte('\n')

	for _, child := range t.nodes[id].children {
		t.print(w, evaluate, values, child)
	}
}
