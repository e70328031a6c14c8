// Package parse implements the sdata recursive-descent parser: it drives
// a scan.Scanner and builds a node.Node document tree.
//
//	node := id? '{' seq '}' | id ':' scalar | '{' seq '}'   (anonymous, top level only)
//	seq  := ε | node (',' node)*
package parse

import (
	"math"
	"strconv"

	"github.com/mabhi256/sdata/node"
	"github.com/mabhi256/sdata/regex"
	"github.com/mabhi256/sdata/scan"
	"github.com/mabhi256/sdata/token"
)

// maxFloatMagnitude is the largest absolute float value sdata accepts,
// tighter than float32's own range (~3.4028235e38).
const maxFloatMagnitude = 1e37

// Parse scans and parses source into a document tree. Nested members
// always carry an identifier; only the top-level node may be anonymous
// (a bare `{ ... }`).
func Parse[C regex.Char](source []C) (*node.Node, error) {
	p := &parser[C]{scanner: scan.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseNode(true)
	if err != nil {
		return nil, err
	}
	if p.cur.Category != token.EOF {
		return nil, p.errorf(UnexpectedToken, token.EOF)
	}
	return root, nil
}

type parser[C regex.Char] struct {
	scanner *scan.Scanner[C]
	cur     token.Token[C]
}

func (p *parser[C]) advance() error {
	tok, err := p.scanner.Tokenize()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser[C]) errorf(kind Kind, want token.Category) error {
	got := p.cur.Category
	if got == token.EOF && kind == UnexpectedToken {
		kind = UnexpectedEOF
	}
	return &Error[C]{Reason: kind, Loc: p.cur.Loc, Want: want, Got: got, Text: p.cur.Literal()}
}

// parseNode reads one node: an identified sequence, an identified
// scalar, or, only when anonymous is true, a bare brace-delimited
// sequence with no leading identifier.
func (p *parser[C]) parseNode(anonymous bool) (*node.Node, error) {
	if anonymous && p.cur.Category == token.BegSeq {
		return p.parseSequenceBody("")
	}

	if !p.cur.Category.Has(token.Identifier | token.Namespace) {
		want := token.Identifier | token.Namespace
		if anonymous {
			want |= token.BegSeq
		}
		return nil, p.errorf(UnexpectedToken, want)
	}
	id := p.cur.Literal()
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.cur.Category {
	case token.BegSeq:
		return p.parseSequenceBody(id)
	case token.Assign:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseScalar(id)
	default:
		return nil, p.errorf(UnexpectedToken, token.BegSeq|token.Assign)
	}
}

// parseSequenceBody consumes `{ seq }`, the opening brace already
// current, and wraps the result under id.
func (p *parser[C]) parseSequenceBody(id string) (*node.Node, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}

	seq := node.NewSequence(id)

	if p.cur.Category != token.EndSeq {
		for {
			child, err := p.parseNode(false)
			if err != nil {
				return nil, err
			}
			seq.Add(child)

			if p.cur.Category != token.Separator {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Category == token.EndSeq {
				break
			}
		}
	}

	if p.cur.Category != token.EndSeq {
		return nil, p.errorf(UnexpectedToken, token.EndSeq)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return seq, nil
}

func (p *parser[C]) parseScalar(id string) (*node.Node, error) {
	tok := p.cur

	switch tok.Category {
	case token.Integer:
		v, err := strconv.ParseInt(tok.Literal(), 10, 32)
		if err != nil {
			return nil, &Error[C]{Reason: IntOverflow, Loc: tok.Loc, Text: tok.Literal()}
		}
		if advErr := p.advance(); advErr != nil {
			return nil, advErr
		}
		return node.NewInt(id, int32(v)), nil

	case token.Float:
		text := tok.Literal()
		if len(text) > 0 && (text[len(text)-1] == 'f' || text[len(text)-1] == 'F') {
			text = text[:len(text)-1]
		}
		v, err := strconv.ParseFloat(text, 32)
		if err != nil || math.Abs(v) > maxFloatMagnitude {
			return nil, &Error[C]{Reason: FloatOverflow, Loc: tok.Loc, Text: tok.Literal()}
		}
		if advErr := p.advance(); advErr != nil {
			return nil, advErr
		}
		return node.NewFloat(id, float32(v)), nil

	case token.Boolean:
		v := tok.Literal() == "true"
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node.NewBool(id, v), nil

	case token.String:
		n := buildString(id, stripQuotes(tok.Text))
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case token.Char:
		n := buildChar(id, stripQuotes(tok.Text))
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return nil, p.errorf(UnexpectedToken, token.Data)
	}
}

// stripQuotes removes the leading and trailing quote unit matched by the
// STRING/CHAR token patterns.
func stripQuotes[C regex.Char](raw []C) []C {
	if len(raw) < 2 {
		return raw[:0]
	}
	return raw[1 : len(raw)-1]
}

func buildString[C regex.Char](id string, content []C) *node.Node {
	switch v := any(content).(type) {
	case []byte:
		return node.NewString8(id, append([]byte(nil), v...))
	case []uint16:
		return node.NewString16(id, append([]uint16(nil), v...))
	case []int32:
		return node.NewString32(id, []rune(v))
	default:
		return node.NewNil(id)
	}
}

func buildChar[C regex.Char](id string, content []C) *node.Node {
	switch v := any(content).(type) {
	case []byte:
		if len(v) == 0 {
			return node.NewChar8(id, 0)
		}
		return node.NewChar8(id, v[0])
	case []uint16:
		if len(v) == 0 {
			return node.NewChar16(id, 0)
		}
		return node.NewChar16(id, v[0])
	case []int32:
		if len(v) == 0 {
			return node.NewChar32(id, 0)
		}
		return node.NewChar32(id, rune(v[0]))
	default:
		return node.NewNil(id)
	}
}
