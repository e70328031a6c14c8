package regex

// Match runs the automata against input from the start, depth-first, trying
// each node's outgoing edges in ascending id order and taking the first one
// that leads to acceptance. It reports whether any prefix of input was
// accepted and, if so, the length of the consumed prefix.
//
// No DFA conversion, no memoization: token patterns are small and
// unambiguous enough that a plain recursive walk is sufficient, and
// first-edge-wins makes the result a deterministic function of
// (automata, input) alone.
func (a *Automata[C]) Match(input []C) (matched bool, length int) {
	if a.Empty() {
		return false, 0
	}
	ok, end := a.run(input, 0, 0)
	return ok, end
}

// FullMatch requires the accepted prefix to consume all of input.
func (a *Automata[C]) FullMatch(input []C) bool {
	ok, end := a.Match(input)
	return ok && end == len(input)
}

func (a *Automata[C]) run(input []C, pos, id int) (bool, int) {
	n := a.nodes[id]

	enterable := n.state == epsilon[C]() || n.state == any_[C]() ||
		(pos < len(input) && n.state == input[pos])
	if !enterable {
		return false, pos
	}

	next := pos
	if n.state != epsilon[C]() {
		next = pos + 1
	}

	for _, edge := range n.edges {
		if ok, end := a.run(input, next, edge); ok {
			return true, end
		}
	}

	// ANY can never itself be an accepting state: it must be followed by
	// something, even if that something turns out to be nothing more than
	// a continuation epsilon.
	if n.state != any_[C]() && a.IsLeaf(id) {
		return true, next
	}

	return false, pos
}
