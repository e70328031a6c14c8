package parse

import (
	"fmt"

	"github.com/mabhi256/sdata/diag"
	"github.com/mabhi256/sdata/regex"
	"github.com/mabhi256/sdata/sourceloc"
	"github.com/mabhi256/sdata/token"
)

// Kind classifies a parse failure.
type Kind int

const (
	UnexpectedToken Kind = iota
	IntOverflow
	FloatOverflow
	UnexpectedEOF
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case IntOverflow:
		return "integer overflow"
	case FloatOverflow:
		return "float overflow"
	case UnexpectedEOF:
		return "unexpected end of input"
	default:
		return "unknown parse error"
	}
}

// Error is raised by Parse. Want, when non-zero, names the category set
// that was acceptable at this point; Got names what was actually found.
type Error[C regex.Char] struct {
	Reason Kind
	Loc    sourceloc.Location[C]
	Want   token.Category
	Got    token.Category
	Text   string
}

func (e *Error[C]) Error() string {
	switch e.Reason {
	case IntOverflow:
		return fmt.Sprintf("parse: %q does not fit in a 32-bit integer\n\t%d | %s", e.Text, e.Loc.Line(), e.Loc.Snippet())
	case FloatOverflow:
		return fmt.Sprintf("parse: %q does not fit in a 32-bit float\n\t%d | %s", e.Text, e.Loc.Line(), e.Loc.Snippet())
	case UnexpectedEOF:
		return fmt.Sprintf("parse: unexpected end of input, expected %v\n\t%d | %s", e.Want, e.Loc.Line(), e.Loc.Snippet())
	default:
		return fmt.Sprintf("parse: unexpected %v %q, expected %v\n\t%d | %s", e.Got, e.Text, e.Want, e.Loc.Line(), e.Loc.Snippet())
	}
}

func (e *Error[C]) Kind() diag.Kind { return diag.KindParse }
