// Package regex implements the sdata regex mini-language: a small,
// anchor-free pattern syntax compiled to a non-deterministic finite
// automaton (NFA) with epsilon and "any" transitions, and a depth-first
// matcher that runs it against a slice of input units.
//
// The automaton is an arena of nodes addressed by dense integer id.
// Forward edges (edge id greater than the source node's id) encode
// concatenation; back-edges (edge id less than or equal to the source's)
// encode the loops introduced by `*` and `+`. A node with no forward
// edges is, by construction, an accepting state.
package regex

import "sort"

// Char is the set of input-unit widths the pipeline supports end to end:
// 8-bit, 16-bit and 32-bit (rune). Patterns themselves are always written
// in 8-bit text; compiling against a wider Char widens each literal byte.
type Char interface {
	~byte | ~uint16 | ~int32
}

// Reserved state values. A concrete pattern character can never collide
// with these: 0x0 and 0x1 are control codes that cannot appear inside a
// `'literal'` or character class in the mini-language.
const (
	epsilonState = 0x0
	anyState     = 0x1
)

func epsilon[C Char]() C { return C(epsilonState) }
func any_[C Char]() C    { return C(anyState) }

type automataNode[C Char] struct {
	state C
	edges []int // ascending, deduplicated
}

// Automata is a compiled NFA. It is built once by Compile and never
// mutated by Match/FullMatch, so it is safe to share across goroutines
// for concurrent matching once construction has finished.
type Automata[C Char] struct {
	nodes []automataNode[C]
}

// New returns an empty automata with no nodes.
func New[C Char]() *Automata[C] {
	return &Automata[C]{}
}

// Empty reports whether the automata has no nodes (compiling "" yields this).
func (a *Automata[C]) Empty() bool {
	return len(a.nodes) == 0
}

// NodeCount returns the number of nodes in the graph, for diagnostics/tests.
func (a *Automata[C]) NodeCount() int {
	return len(a.nodes)
}

// Create adds a node with the given state, connecting every ancestor to it,
// and returns its id. Ids are assigned sequentially starting at 0.
func (a *Automata[C]) Create(state C, ancestors ...int) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, automataNode[C]{state: state})
	for _, ancestor := range ancestors {
		a.Connect(ancestor, id)
	}
	return id
}

// Connect adds an edge from id to edge, if not already present.
func (a *Automata[C]) Connect(id, edge int) {
	edges := a.nodes[id].edges
	i := sort.SearchInts(edges, edge)
	if i < len(edges) && edges[i] == edge {
		return
	}
	edges = append(edges, 0)
	copy(edges[i+1:], edges[i:])
	edges[i] = edge
	a.nodes[id].edges = edges
}

// IsLeaf reports whether id has no forward edges (only back-edges, or
// none at all). Leaves are the automata's accepting states.
func (a *Automata[C]) IsLeaf(id int) bool {
	edges := a.nodes[id].edges
	if len(edges) == 0 {
		return true
	}
	return edges[len(edges)-1] < id
}

// Leaves returns the set of leaf ids reachable from id by following only
// forward edges, deduplicated and sorted.
func (a *Automata[C]) Leaves(id int) []int {
	if a.IsLeaf(id) {
		return []int{id}
	}

	seen := map[int]bool{}
	var out []int
	var walk func(int)
	walk = func(n int) {
		if a.IsLeaf(n) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
			return
		}
		for _, e := range a.nodes[n].edges {
			if e > n {
				walk(e)
			}
		}
	}
	walk(id)

	sort.Ints(out)
	return out
}

// Merge appends a copy of other's nodes into a, rebasing their ids by a's
// current node count, connects each ancestor to the rebased root (other's
// node 0), and returns the rebased root id. No id already in a is ever
// reused.
func (a *Automata[C]) Merge(other *Automata[C], ancestors ...int) int {
	if other.Empty() {
		return -1
	}

	base := len(a.nodes)
	for _, n := range other.nodes {
		edges := make([]int, len(n.edges))
		for i, e := range n.edges {
			edges[i] = base + e
		}
		a.nodes = append(a.nodes, automataNode[C]{state: n.state, edges: edges})
	}

	for _, ancestor := range ancestors {
		a.Connect(ancestor, base)
	}

	return base
}
