package emit

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mabhi256/sdata/diag"
	"github.com/mabhi256/sdata/node"
)

// Error is raised when a node carries a value Emit cannot render, such as
// an unset (KindNil) value.
type Error struct {
	NodeKind node.Kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("emit: cannot render a %s node as a value", e.NodeKind)
}

func (e *Error) Kind() diag.Kind { return diag.KindEmit }

// Emit renders root to sdata source text, under cfg. root is rendered as
// a top-level node: identified `id { ... }` / `id: scalar`, or, when
// root's identifier is empty, an anonymous `{ ... }`.
func Emit(root *node.Node, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	e := &emitter{cfg: cfg, buf: &buf}
	if err := e.writeNode(root, 0, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type emitter struct {
	cfg Config
	buf *bytes.Buffer
}

func (e *emitter) indent(depth int) {
	e.buf.WriteString(strings.Repeat(e.cfg.Indent, depth))
}

// writeNode renders one node (identifier + payload) at the given depth.
func (e *emitter) writeNode(n *node.Node, depth int, top bool) error {
	anonymous := top && n.Identifier() == ""
	if !anonymous {
		e.buf.WriteString(n.Identifier())
	}

	if n.Kind() == node.KindSequence {
		return e.writeSequence(n, depth, anonymous)
	}

	if e.cfg.Style.has(SpaceBeforeAssign) {
		e.buf.WriteByte(' ')
	}
	e.buf.WriteByte(':')
	if e.cfg.Style.has(SpaceAfterAssign) {
		e.buf.WriteByte(' ')
	}
	return e.writeScalar(n)
}

func (e *emitter) writeSequence(n *node.Node, depth int, anonymous bool) error {
	breakBrace := e.cfg.Style.has(BreakAfterBrace)
	if anonymous {
		breakBrace = e.cfg.Style.has(BreakForAnonymousBraces)
	}
	breakSeparator := e.cfg.Style.has(BreakAfterSeparator)

	if !anonymous {
		if e.cfg.Style.has(BreakBeforeBrace) {
			e.buf.WriteByte('\n')
			e.indent(depth)
		} else if e.cfg.Style.has(SpaceBeforeBrace) {
			e.buf.WriteByte(' ')
		}
	}
	e.buf.WriteByte('{')

	children := n.Children()
	if len(children) == 0 {
		e.buf.WriteByte('}')
		return nil
	}

	for i, child := range children {
		if i > 0 {
			e.buf.WriteByte(',')
			if breakSeparator {
				e.buf.WriteByte('\n')
				e.indent(depth + 1)
			} else if e.cfg.Style.has(SpaceAfterSeparator) {
				e.buf.WriteByte(' ')
			}
		} else if breakBrace {
			e.buf.WriteByte('\n')
			e.indent(depth + 1)
		} else if e.cfg.Style.has(SpaceAfterBrace) {
			e.buf.WriteByte(' ')
		}

		if err := e.writeNode(child, depth+1, false); err != nil {
			return err
		}
	}

	if breakBrace {
		e.buf.WriteByte('\n')
		e.indent(depth)
	} else if e.cfg.Style.has(SpaceAfterBrace) {
		e.buf.WriteByte(' ')
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *emitter) writeScalar(n *node.Node) error {
	switch n.Kind() {
	case node.KindInt:
		v, _ := n.Int()
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
		return nil

	case node.KindFloat:
		v, _ := n.Float()
		s := strconv.FormatFloat(float64(v), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0" // the float token needs digits on both sides of '.'
		}
		e.buf.WriteString(s)
		e.buf.WriteByte('f')
		return nil

	case node.KindBool:
		v, _ := n.Bool()
		if v {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
		return nil

	case node.KindChar8:
		v, _ := n.Char8()
		e.buf.WriteByte('\'')
		e.buf.WriteByte(v)
		e.buf.WriteByte('\'')
		return nil
	case node.KindChar16:
		v, _ := n.Char16()
		e.buf.WriteByte('\'')
		e.buf.WriteRune(rune(v))
		e.buf.WriteByte('\'')
		return nil
	case node.KindChar32:
		v, _ := n.Char32()
		e.buf.WriteByte('\'')
		e.buf.WriteRune(v)
		e.buf.WriteByte('\'')
		return nil

	case node.KindString8:
		v, _ := n.String8()
		e.buf.WriteByte('"')
		e.buf.Write(v)
		e.buf.WriteByte('"')
		return nil
	case node.KindString16:
		v, _ := n.String16()
		e.buf.WriteByte('"')
		e.buf.WriteString(string(utf16.Decode(v)))
		e.buf.WriteByte('"')
		return nil
	case node.KindString32:
		v, _ := n.String32()
		e.buf.WriteByte('"')
		e.buf.WriteString(string(v))
		e.buf.WriteByte('"')
		return nil

	default:
		return &Error{NodeKind: n.Kind()}
	}
}
