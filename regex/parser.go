package regex

import "strings"

// Compile parses a pattern string and returns the NFA it describes,
// widening each literal pattern byte to C. Patterns are always written in
// 8-bit text; compiling against C = uint16 or C = rune widens the literal
// characters so the same pattern table matches any width.
func Compile[C Char](pattern string) (*Automata[C], error) {
	p := &parser[C]{pattern: pattern}
	return p.parse()
}

// parser compiles a pattern via a stack of partial automata: operands
// push, quantifiers and alternation pop and replace the top. At end of
// pattern the remaining frames are concatenated left to right.
type parser[C Char] struct {
	pattern string
	pos     int
	stack   []*Automata[C]
}

func (p *parser[C]) parse() (*Automata[C], error) {
	for p.pos < len(p.pattern) {
		if err := p.parseToken(); err != nil {
			return nil, err
		}
	}

	if len(p.stack) == 0 {
		return New[C](), nil
	}

	return p.compileSequence(), nil
}

// compileSequence concatenates the stack's remaining frames left to right,
// threading each merge off the running leaves of the accumulated result.
func (p *parser[C]) compileSequence() *Automata[C] {
	result := p.stack[0]
	root := 0

	for _, next := range p.stack[1:] {
		root = result.Merge(next, result.Leaves(root)...)
	}

	return result
}

func (p *parser[C]) parseToken() error {
	ch := p.pattern[p.pos]

	if isBlankPatternChar(ch) {
		p.pos++
		return nil
	}

	if isCharacterClass(ch) {
		return p.parseCharacterClass(ch)
	}

	switch ch {
	case '^':
		return p.parseAny()
	case '\'':
		return p.parseLiteral()
	case '{':
		return p.parseSubsequence()
	case '+':
		return p.parseQuantifier(p.buildPlus)
	case '?':
		return p.parseQuantifier(p.buildQuest)
	case '*':
		return p.parseQuantifier(p.buildKleene)
	case '$':
		return p.parseQuantifier(p.buildUntil)
	case '|':
		return p.parseAlternative()
	case '}':
		return p.fail(UnexpectedSubsequenceEnd, p.pos)
	default:
		return p.fail(UnrecognizedToken, p.pos)
	}
}

func (p *parser[C]) fail(kind Kind, index int) error {
	return &Error{Kind: kind, Pattern: p.pattern, Index: index}
}

func (p *parser[C]) parseCharacterClass(letter byte) error {
	chars := classChars[letter]

	seq := New[C]()
	root := seq.Create(epsilon[C]())
	for i := 0; i < len(chars); i++ {
		seq.Create(C(chars[i]), root)
	}

	p.stack = append(p.stack, seq)
	p.pos++
	return nil
}

func (p *parser[C]) parseAny() error {
	seq := New[C]()
	seq.Create(any_[C]())

	p.stack = append(p.stack, seq)
	p.pos++
	return nil
}

// parseLiteral reads a 'literal string', concatenating each character as a
// linear chain. Inner ' is not escapable: it terminates the literal.
func (p *parser[C]) parseLiteral() error {
	start := p.pos
	rest := p.pattern[p.pos+1:]

	closing := strings.IndexByte(rest, '\'')
	if closing == -1 {
		return p.fail(UnterminatedLiteral, start)
	}

	literal := rest[:closing]

	seq := New[C]()
	prev := -1
	for i := 0; i < len(literal); i++ {
		id := seq.Create(C(literal[i]))
		if prev >= 0 {
			seq.Connect(prev, id)
		}
		prev = id
	}
	if literal == "" {
		// A degenerate '' literal has nothing to consume; model it as a
		// zero-width epsilon so it still composes correctly under
		// concatenation and quantifiers.
		seq.Create(epsilon[C]())
	}

	p.stack = append(p.stack, seq)
	p.pos = start + 1 + closing + 1
	return nil
}

// parseSubsequence compiles the pattern inside a balanced { ... } as a
// single operand, recursively. Nested compile errors are re-raised against
// the outer pattern, pointing at this subsequence's opening brace.
func (p *parser[C]) parseSubsequence() error {
	start := p.pos
	depth := 1
	i := p.pos + 1

	for i < len(p.pattern) {
		switch p.pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				inner := p.pattern[start+1 : i]

				sub, err := Compile[C](inner)
				if err != nil {
					return p.rewrapSubsequenceError(err, start)
				}

				p.stack = append(p.stack, sub)
				p.pos = i + 1
				return nil
			}
		}
		i++
	}

	return p.fail(UnterminatedSubsequence, start)
}

func (p *parser[C]) rewrapSubsequenceError(err error, braceIndex int) error {
	if inner, ok := err.(*Error); ok {
		return &Error{Kind: inner.Kind, Pattern: p.pattern, Index: braceIndex}
	}
	return err
}

func (p *parser[C]) parseQuantifier(build func(*Automata[C]) *Automata[C]) error {
	if len(p.stack) == 0 {
		return p.fail(MissingQuantifiable, p.pos)
	}

	operand := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	p.stack = append(p.stack, build(operand))
	p.pos++
	return nil
}

// buildQuest implements `?` (zero-or-one):
//
//	root --eps--> operand --> (leaves)
//	root --eps--> continuation (leaf)
func (p *parser[C]) buildQuest(operand *Automata[C]) *Automata[C] {
	seq := New[C]()
	root := seq.Create(epsilon[C]())
	seq.Merge(operand, root)
	seq.Create(epsilon[C](), root)
	return seq
}

// buildKleene implements `*` (zero-or-more): like `?`, plus every leaf of
// the operand loops back to root.
func (p *parser[C]) buildKleene(operand *Automata[C]) *Automata[C] {
	seq := New[C]()
	root := seq.Create(epsilon[C]())
	opRoot := seq.Merge(operand, root)
	seq.Create(epsilon[C](), root)

	for _, leaf := range seq.Leaves(opRoot) {
		seq.Connect(leaf, root)
	}

	return seq
}

// buildPlus implements `+` (one-or-more) in place: every leaf of operand
// gains an edge to one new, shared epsilon node whose only edge is a
// back-edge to operand's own root (id 0), so the new node is
// simultaneously the loop point and the (only) accepting leaf.
func (p *parser[C]) buildPlus(operand *Automata[C]) *Automata[C] {
	leaves := operand.Leaves(0)
	id := operand.Create(epsilon[C](), leaves...)
	operand.Connect(id, 0)
	return operand
}

// buildUntil implements `$` (until-any): root has an edge into operand
// (the accept path) and an ANY edge back to root (the skip path), i.e.
// "skip arbitrary input until operand matches".
func (p *parser[C]) buildUntil(operand *Automata[C]) *Automata[C] {
	seq := New[C]()
	root := seq.Create(epsilon[C]())
	seq.Merge(operand, root)
	anyID := seq.Create(any_[C](), root)
	seq.Connect(anyID, root)
	return seq
}

// parseAlternative implements `A | B`. It consumes the `|` and parses
// exactly one more token as B's first atom, then merges the two most
// recently pushed operands under a fresh epsilon root. A quantifier
// immediately following B is therefore applied by the outer loop to the
// whole alternation, not just to B. This is a deliberately adopted
// behavior, not an incomplete parse of B.
func (p *parser[C]) parseAlternative() error {
	barIndex := p.pos
	p.pos++

	if p.pos >= len(p.pattern) {
		return p.fail(MissingAlternative, barIndex)
	}
	if err := p.parseToken(); err != nil {
		return err
	}

	seq := New[C]()
	root := seq.Create(epsilon[C]())

	for i := 0; i < 2; i++ {
		if len(p.stack) == 0 {
			return p.fail(MissingAlternative, p.pos)
		}
		alt := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		seq.Merge(alt, root)
	}

	p.stack = append(p.stack, seq)
	return nil
}
