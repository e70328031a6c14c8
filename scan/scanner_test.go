package scan

import (
	"testing"

	"github.com/mabhi256/sdata/token"
)

func collect(t *testing.T, src string) []token.Token[byte] {
	t.Helper()
	s := New([]byte(src))
	var toks []token.Token[byte]
	for {
		tok, err := s.Tokenize()
		if err != nil {
			t.Fatalf("Tokenize: %v", err)
		}
		toks = append(toks, tok)
		if tok.Category == token.EOF {
			return toks
		}
	}
}

func TestScansBasicSequence(t *testing.T) {
	toks := collect(t, `name: "Pong", level: 3, ratio: 1.5f, on: true`)

	want := []token.Category{
		token.Identifier, token.Assign, token.String, token.Separator,
		token.Identifier, token.Assign, token.Integer, token.Separator,
		token.Identifier, token.Assign, token.Float, token.Separator,
		token.Identifier, token.Assign, token.Boolean,
		token.EOF,
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, cat := range want {
		if toks[i].Category != cat {
			t.Fatalf("token %d: got category %v, want %v (%q)", i, toks[i].Category, cat, toks[i].Text)
		}
	}
}

func TestScansNamespaceAndComment(t *testing.T) {
	toks := collect(t, "@player // a trailing comment with no newline")

	if toks[0].Category != token.Namespace {
		t.Fatalf("got %v, want namespace", toks[0].Category)
	}
	if toks[1].Category != token.EOF {
		t.Fatalf("expected comment to be discarded, got %v next", toks[1].Category)
	}
}

func TestScansCommentFollowedByToken(t *testing.T) {
	toks := collect(t, "// header\nname")

	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].Category != token.Identifier {
		t.Fatalf("got %v, want identifier", toks[0].Category)
	}
}

func TestUnrecognizedTokenRaisesScanError(t *testing.T) {
	s := New([]byte("#"))
	_, err := s.Tokenize()
	if err == nil {
		t.Fatal("expected a scan error for '#'")
	}
	if _, ok := err.(*Error[byte]); !ok {
		t.Fatalf("expected *scan.Error, got %T", err)
	}
}

func TestEOFIsStableAcrossRepeatedCalls(t *testing.T) {
	s := New([]byte(""))
	first, err := s.Tokenize()
	if err != nil || first.Category != token.EOF {
		t.Fatalf("got (%+v, %v), want EOF", first, err)
	}
	second, err := s.Tokenize()
	if err != nil || second.Category != token.EOF {
		t.Fatalf("got (%+v, %v), want EOF again", second, err)
	}
}
