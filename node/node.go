// Package node implements the sdata document tree: a variant node type
// that owns an identifier (possibly empty, for an anonymous root) and
// exactly one payload (a sequence of child nodes, or one scalar value),
// plus a dotted-path lookup for navigating it.
package node

import (
	"fmt"
	"strings"

	"github.com/mabhi256/sdata/diag"
	"github.com/mabhi256/sdata/internal/suggest"
)

// Kind identifies which payload a Node carries.
type Kind int

const (
	KindNil Kind = iota
	KindSequence
	KindInt
	KindFloat
	KindBool
	KindChar8
	KindChar16
	KindChar32
	KindString8
	KindString16
	KindString32
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindSequence:
		return "sequence"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar8, KindChar16, KindChar32:
		return "char"
	case KindString8, KindString16, KindString32:
		return "string"
	default:
		return "unknown"
	}
}

// Node is a single element of an sdata document tree. The zero value is
// not useful; construct one with New* below.
type Node struct {
	identifier string
	kind       Kind
	owner      *Node

	children []*Node

	intVal   int32
	floatVal float32
	boolVal  bool

	char8  byte
	char16 uint16
	char32 rune

	str8  []byte
	str16 []uint16
	str32 []rune
}

func NewNil(id string) *Node                { return &Node{identifier: id, kind: KindNil} }
func NewSequence(id string) *Node           { return &Node{identifier: id, kind: KindSequence} }
func NewInt(id string, v int32) *Node       { return &Node{identifier: id, kind: KindInt, intVal: v} }
func NewFloat(id string, v float32) *Node   { return &Node{identifier: id, kind: KindFloat, floatVal: v} }
func NewBool(id string, v bool) *Node       { return &Node{identifier: id, kind: KindBool, boolVal: v} }
func NewChar8(id string, v byte) *Node      { return &Node{identifier: id, kind: KindChar8, char8: v} }
func NewChar16(id string, v uint16) *Node   { return &Node{identifier: id, kind: KindChar16, char16: v} }
func NewChar32(id string, v rune) *Node     { return &Node{identifier: id, kind: KindChar32, char32: v} }
func NewString8(id string, v []byte) *Node  { return &Node{identifier: id, kind: KindString8, str8: v} }
func NewString16(id string, v []uint16) *Node {
	return &Node{identifier: id, kind: KindString16, str16: v}
}
func NewString32(id string, v []rune) *Node {
	return &Node{identifier: id, kind: KindString32, str32: v}
}

// Identifier returns the node's own name, empty for an anonymous root.
func (n *Node) Identifier() string { return n.identifier }

// Kind reports which payload this node holds.
func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsNil() bool      { return n.kind == KindNil }
func (n *Node) IsSequence() bool { return n.kind == KindSequence }

func (n *Node) Int() (int32, bool)         { return n.intVal, n.kind == KindInt }
func (n *Node) Float() (float32, bool)     { return n.floatVal, n.kind == KindFloat }
func (n *Node) Bool() (bool, bool)         { return n.boolVal, n.kind == KindBool }
func (n *Node) Char8() (byte, bool)        { return n.char8, n.kind == KindChar8 }
func (n *Node) Char16() (uint16, bool)     { return n.char16, n.kind == KindChar16 }
func (n *Node) Char32() (rune, bool)       { return n.char32, n.kind == KindChar32 }
func (n *Node) String8() ([]byte, bool)    { return n.str8, n.kind == KindString8 }
func (n *Node) String16() ([]uint16, bool) { return n.str16, n.kind == KindString16 }
func (n *Node) String32() ([]rune, bool)   { return n.str32, n.kind == KindString32 }

// Owner returns the parent this node was Add-ed to, or nil for a root.
func (n *Node) Owner() *Node { return n.owner }

// Root walks up the owner chain to the outermost node.
func (n *Node) Root() *Node {
	r := n
	for r.owner != nil {
		r = r.owner
	}
	return r
}

// Add appends child, preserving insertion order. Duplicate identifiers
// are permitted and both survive; Get returns the first.
func (n *Node) Add(child *Node) *Node {
	child.owner = n
	n.children = append(n.children, child)
	return n
}

// Children returns the nodes directly under n, in insertion order. The
// returned slice is a copy; mutating it does not affect n.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) child(id string) (*Node, bool) {
	for _, c := range n.children {
		if c.identifier == id {
			return c, true
		}
	}
	return nil, false
}

// Equal reports deep structural equality, used by go-cmp in tests.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.identifier != other.identifier || n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindInt:
		return n.intVal == other.intVal
	case KindFloat:
		return n.floatVal == other.floatVal
	case KindBool:
		return n.boolVal == other.boolVal
	case KindChar8:
		return n.char8 == other.char8
	case KindChar16:
		return n.char16 == other.char16
	case KindChar32:
		return n.char32 == other.char32
	case KindString8:
		return string(n.str8) == string(other.str8)
	case KindString16:
		return equalUint16(n.str16, other.str16)
	case KindString32:
		return string(n.str32) == string(other.str32)
	case KindSequence:
		if len(n.children) != len(other.children) {
			return false
		}
		for i, c := range n.children {
			if !c.Equal(other.children[i]) {
				return false
			}
		}
		return true
	default: // KindNil
		return true
	}
}

func equalUint16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Error reports a failed path lookup, with a fuzzy "did you mean" hint
// when one of the node's children is a plausible match.
type Error struct {
	Path    string
	Segment string
	Did     string
	HasHint bool
}

func (e *Error) Error() string {
	if e.HasHint {
		return fmt.Sprintf("node: no child %q in path %q (did you mean %q?)", e.Segment, e.Path, e.Did)
	}
	return fmt.Sprintf("node: no child %q in path %q", e.Segment, e.Path)
}

func (e *Error) Kind() diag.Kind { return diag.KindNode }

// Get resolves a dotted path against n. Paths use `/` to separate
// segments; a segment of `\` jumps to the document root, `.` stays on
// the current node, `..` moves to the owner, and any other segment
// looks up a child by exact identifier.
func (n *Node) Get(path string) (*Node, error) {
	segments := strings.Split(path, "/")

	cur := n
	for _, seg := range segments {
		switch seg {
		case "\\":
			cur = cur.Root()
		case ".":
			continue
		case "..":
			if cur.owner == nil {
				return nil, &Error{Path: path, Segment: seg}
			}
			cur = cur.owner
		default:
			child, ok := cur.child(seg)
			if !ok {
				var ids []string
				for _, c := range cur.children {
					ids = append(ids, c.identifier)
				}
				if best, found := suggest.Best(seg, ids); found {
					return nil, &Error{Path: path, Segment: seg, Did: best, HasHint: true}
				}
				return nil, &Error{Path: path, Segment: seg}
			}
			cur = child
		}
	}

	return cur, nil
}
