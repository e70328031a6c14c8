// Package sdata is the public entry point for parsing and emitting sdata
// documents. It wires together regex/scan/parse/emit/node into the three
// supported input widths: UTF-8 bytes, UTF-16 code units, and UTF-32
// (rune) code points.
package sdata

import (
	"os"

	"github.com/mabhi256/sdata/emit"
	"github.com/mabhi256/sdata/node"
	"github.com/mabhi256/sdata/parse"
)

// Parse interprets source as UTF-8 sdata text and builds a document tree.
func Parse(source []byte) (*node.Node, error) {
	return parse.Parse(source)
}

// ParseUTF16 interprets source as UTF-16 code units.
func ParseUTF16(source []uint16) (*node.Node, error) {
	return parse.Parse(source)
}

// ParseRunes interprets source as decoded UTF-32 code points.
func ParseRunes(source []rune) (*node.Node, error) {
	return parse.Parse(source)
}

// Emit renders root as sdata text under cfg.
func Emit(root *node.Node, cfg emit.Config) ([]byte, error) {
	return emit.Emit(root, cfg)
}

// ReadSourceFile reads path's raw bytes. It does not parse them; callers
// combine it with Parse/ParseUTF16/ParseRunes as the input width requires.
func ReadSourceFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteSourceFile writes data to path. It does not emit it; callers
// combine it with Emit.
func WriteSourceFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
