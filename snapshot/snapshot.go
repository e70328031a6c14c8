// Package snapshot serializes a node.Node document tree to and from a
// compact binary form (CBOR), for caching parsed documents without
// re-running the scanner and parser.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/mabhi256/sdata/node"
)

// wireNode is the CBOR wire shape for a node.Node. Only one of the value
// fields is populated, selected by Kind; cbor's omitempty keeps the
// encoding compact.
type wireNode struct {
	Kind    node.Kind  `cbor:"1,keyasint"`
	Name    string     `cbor:"2,keyasint,omitempty"`
	Entries []wireNode `cbor:"3,keyasint,omitempty"`

	Int    int32    `cbor:"4,keyasint,omitempty"`
	Float  float32  `cbor:"5,keyasint,omitempty"`
	Bool   bool     `cbor:"6,keyasint,omitempty"`
	Char8  byte     `cbor:"7,keyasint,omitempty"`
	Char16 uint16   `cbor:"8,keyasint,omitempty"`
	Char32 int32    `cbor:"9,keyasint,omitempty"`
	Str8   []byte   `cbor:"10,keyasint,omitempty"`
	Str16  []uint16 `cbor:"11,keyasint,omitempty"`
	Str32  []int32  `cbor:"12,keyasint,omitempty"`
}

// Encode serializes root to CBOR.
func Encode(root *node.Node) ([]byte, error) {
	w, err := toWire(root)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(w)
}

// Decode reconstructs a document tree previously produced by Encode.
func Decode(data []byte) (*node.Node, error) {
	var w wireNode
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return fromWire(w), nil
}

func toWire(n *node.Node) (wireNode, error) {
	w := wireNode{Kind: n.Kind(), Name: n.Identifier()}

	switch n.Kind() {
	case node.KindSequence:
		children := n.Children()
		w.Entries = make([]wireNode, len(children))
		for i, c := range children {
			cw, err := toWire(c)
			if err != nil {
				return wireNode{}, err
			}
			w.Entries[i] = cw
		}
	case node.KindInt:
		w.Int, _ = n.Int()
	case node.KindFloat:
		w.Float, _ = n.Float()
	case node.KindBool:
		w.Bool, _ = n.Bool()
	case node.KindChar8:
		w.Char8, _ = n.Char8()
	case node.KindChar16:
		w.Char16, _ = n.Char16()
	case node.KindChar32:
		v, _ := n.Char32()
		w.Char32 = int32(v)
	case node.KindString8:
		w.Str8, _ = n.String8()
	case node.KindString16:
		w.Str16, _ = n.String16()
	case node.KindString32:
		v, _ := n.String32()
		w.Str32 = make([]int32, len(v))
		for i, r := range v {
			w.Str32[i] = int32(r)
		}
	case node.KindNil:
		// nothing to carry
	default:
		return wireNode{}, fmt.Errorf("snapshot: unknown node kind %v", n.Kind())
	}

	return w, nil
}

func fromWire(w wireNode) *node.Node {
	switch w.Kind {
	case node.KindSequence:
		seq := node.NewSequence(w.Name)
		for _, e := range w.Entries {
			seq.Add(fromWire(e))
		}
		return seq
	case node.KindInt:
		return node.NewInt(w.Name, w.Int)
	case node.KindFloat:
		return node.NewFloat(w.Name, w.Float)
	case node.KindBool:
		return node.NewBool(w.Name, w.Bool)
	case node.KindChar8:
		return node.NewChar8(w.Name, w.Char8)
	case node.KindChar16:
		return node.NewChar16(w.Name, w.Char16)
	case node.KindChar32:
		return node.NewChar32(w.Name, rune(w.Char32))
	case node.KindString8:
		return node.NewString8(w.Name, w.Str8)
	case node.KindString16:
		return node.NewString16(w.Name, w.Str16)
	case node.KindString32:
		runes := make([]rune, len(w.Str32))
		for i, v := range w.Str32 {
			runes[i] = rune(v)
		}
		return node.NewString32(w.Name, runes)
	default:
		return node.NewNil(w.Name)
	}
}
