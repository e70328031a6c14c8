package regex

import (
	"fmt"
	"strings"
)

// String renders a human-readable dump of the automata's nodes and edges,
// useful for debugging a compiled pattern without a Graphviz dependency.
func (a *Automata[C]) String() string {
	var b strings.Builder
	for id, n := range a.nodes {
		label := stateLabel(n.state)
		accept := ""
		if a.IsLeaf(id) {
			accept = " (accept)"
		}
		fmt.Fprintf(&b, "%d: %s%s -> %v\n", id, label, accept, n.edges)
	}
	return b.String()
}

func stateLabel[C Char](state C) string {
	switch state {
	case epsilon[C]():
		return "EPS"
	case any_[C]():
		return "ANY"
	}
	if state >= 0x20 && state <= 0x7E {
		return fmt.Sprintf("%q", rune(state))
	}
	return fmt.Sprintf("0x%x", uint32(state))
}
