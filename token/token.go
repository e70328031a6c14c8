// Package token defines the sdata token categories and the static,
// lazily-compiled table of regex patterns that recognize them.
package token

import (
	"strings"
	"unicode/utf16"

	"github.com/mabhi256/sdata/regex"
	"github.com/mabhi256/sdata/sourceloc"
)

// Category is a bitfield so the parser can request a set of acceptable
// categories in a single check.
type Category uint32

const (
	Identifier Category = 1 << iota
	Namespace           // '@name', e.g. '@player'
	Assign
	Separator
	BegSeq
	EndSeq
	Integer
	Float
	Boolean
	String
	Char
	Empty   // whitespace, discarded by the scanner
	Comment // supplemented: '// ...' to end of line, discarded
	EOF
)

// Data is the mask union of the scalar categories.
const Data = Integer | Float | Boolean | String | Char

// Has reports whether c contains any category in set.
func (c Category) Has(set Category) bool {
	return c&set != 0
}

// bitNames lists every single-bit Category in declaration order, paired
// with the name String uses for it.
var bitNames = []struct {
	bit  Category
	name string
}{
	{Identifier, "identifier"},
	{Namespace, "namespace"},
	{Assign, "assign"},
	{Separator, "separator"},
	{BegSeq, "begin-sequence"},
	{EndSeq, "end-sequence"},
	{Integer, "integer"},
	{Float, "float"},
	{Boolean, "boolean"},
	{String, "string"},
	{Char, "char"},
	{Empty, "empty"},
	{Comment, "comment"},
	{EOF, "eof"},
}

// String renders c as its single matching name, or, for a composite mask
// built from Has's argument (e.g. an "acceptable token" set in a parse
// error), each set bit's name joined with `|`.
func (c Category) String() string {
	if c == 0 {
		return "none"
	}

	var names []string
	for _, bn := range bitNames {
		if c.Has(bn.bit) {
			names = append(names, bn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Token is a single lexical unit: the raw text it matched, its category,
// and the source location it was found at.
type Token[C regex.Char] struct {
	Text     []C
	Category Category
	Loc      sourceloc.Location[C]
}

// Literal renders Text as a string regardless of the token's unit width.
func (t Token[C]) Literal() string {
	switch v := any(t.Text).(type) {
	case []byte:
		return string(v)
	case []uint16:
		return string(utf16.Decode(v))
	case []int32:
		return string([]rune(v))
	default:
		return ""
	}
}
