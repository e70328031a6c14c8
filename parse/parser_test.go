package parse

import "testing"

func TestParsesIdentifiedSequenceWithScalars(t *testing.T) {
	src := `tetris { width: 1920, height: 1080, title: "Tetris game", fullscreen: false }`
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Identifier() != "tetris" {
		t.Fatalf("got identifier %q, want tetris", root.Identifier())
	}

	children := root.Children()
	if len(children) != 4 {
		t.Fatalf("got %d entries, want 4", len(children))
	}
	if v, ok := children[0].Int(); !ok || v != 1920 {
		t.Fatalf("got (%v, %v), want (1920, true)", v, ok)
	}
	if s, ok := children[2].String8(); !ok || string(s) != "Tetris game" {
		t.Fatalf("got (%q, %v), want (Tetris game, true)", s, ok)
	}
	if v, ok := children[3].Bool(); !ok || v != false {
		t.Fatalf("got (%v, %v), want (false, true)", v, ok)
	}
}

func TestParsesNestedSequences(t *testing.T) {
	src := `tetris { controls { left: 'a', right: 'd' } }`
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	controls, err := root.Get("controls")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	left, err := controls.Get("left")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, ok := left.Char8(); !ok || v != 'a' {
		t.Fatalf("got (%v, %v), want ('a', true)", v, ok)
	}
}

func TestParsesAnonymousRoot(t *testing.T) {
	root, err := Parse([]byte(`{ a: 1, b: 2 }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Identifier() != "" {
		t.Fatalf("got identifier %q, want empty", root.Identifier())
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d entries, want 2", len(children))
	}
}

func TestParsesScalarAsTopLevelNode(t *testing.T) {
	root, err := Parse([]byte(`n: 42`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Identifier() != "n" {
		t.Fatalf("got identifier %q, want n", root.Identifier())
	}
	if v, ok := root.Int(); !ok || v != 42 {
		t.Fatalf("got (%v, %v), want (42, true)", v, ok)
	}
}

func TestParsesFloatAndNegativeInt(t *testing.T) {
	root, err := Parse([]byte(`cfg { ratio: 1.5f, delta: -7 }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := root.Children()
	if v, ok := children[0].Float(); !ok || v != 1.5 {
		t.Fatalf("got (%v, %v), want (1.5, true)", v, ok)
	}
	if v, ok := children[1].Int(); !ok || v != -7 {
		t.Fatalf("got (%v, %v), want (-7, true)", v, ok)
	}
}

func TestParseIntegerOverflowIsReported(t *testing.T) {
	_, err := Parse([]byte(`n: 9999999999`))
	if err == nil {
		t.Fatal("expected an overflow error")
	}
	perr, ok := err.(*Error[byte])
	if !ok {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	if perr.Reason != IntOverflow {
		t.Fatalf("got reason %v, want IntOverflow", perr.Reason)
	}
}

func TestParseFloatOverflowIsReported(t *testing.T) {
	_, err := Parse([]byte(`n: 50000000000000000000000000000000000000.0`))
	if err == nil {
		t.Fatal("expected an overflow error")
	}
	perr, ok := err.(*Error[byte])
	if !ok {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	if perr.Reason != FloatOverflow {
		t.Fatalf("got reason %v, want FloatOverflow", perr.Reason)
	}
}

func TestParseTrailingCommaAllowed(t *testing.T) {
	root, err := Parse([]byte(`cfg { a: 1, b: 2, }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children()) != 2 {
		t.Fatalf("got %d entries, want 2", len(root.Children()))
	}
}

func TestParseEmptySequence(t *testing.T) {
	root, err := Parse([]byte(`cfg {}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children()) != 0 {
		t.Fatalf("got %d entries, want 0", len(root.Children()))
	}
}

func TestParseNamespaceEntry(t *testing.T) {
	root, err := Parse([]byte(`@player: 1`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Identifier() != "@player" {
		t.Fatalf("got %q, want @player", root.Identifier())
	}
}

func TestParseDuplicateIdentifiersPreserved(t *testing.T) {
	root, err := Parse([]byte(`r { x: 1, x: 2 }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if v, _ := children[0].Int(); v != 1 {
		t.Fatalf("got %v, want 1", v)
	}
	if v, _ := children[1].Int(); v != 2 {
		t.Fatalf("got %v, want 2", v)
	}
}

func TestParseRejectsUnterminatedSequence(t *testing.T) {
	_, err := Parse([]byte(`tags { a: 1`))
	if err == nil {
		t.Fatal("expected an error for an unterminated sequence")
	}
}

func TestParseScannerFailureOnBareAt(t *testing.T) {
	_, err := Parse([]byte(`a: @`))
	if err == nil {
		t.Fatal("expected a scan error to bubble up")
	}
}

func TestParsesRunes(t *testing.T) {
	root, err := Parse([]rune(`greeting: "héllo"`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s, ok := root.String32(); !ok || string(s) != "héllo" {
		t.Fatalf("got (%q, %v), want (héllo, true)", string(s), ok)
	}
}
