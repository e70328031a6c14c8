package sdata

import (
	"testing"
	"unicode/utf16"

	"github.com/mabhi256/sdata/emit"
)

const gameConfig = `tetris {
  window {
    width: 1920,
    height: 1080,
    title: "Tetris game",
    fullscreen: false
  },
  controls {
    left: 'a',
    right: 'd',
    confirm: 'e',
    pause: 'p'
  }
}`

func TestScenarioARoundTripsByteForByte(t *testing.T) {
	root, err := Parse([]byte(gameConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := Emit(root, emit.Default())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if string(out) != gameConfig {
		t.Fatalf("round trip mismatch:\ngot:\n%s\nwant:\n%s", out, gameConfig)
	}

	width, err := root.Get("window/width")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, ok := width.Int(); !ok || v != 1920 {
		t.Fatalf("got (%v, %v), want (1920, true)", v, ok)
	}

	fullscreen, err := root.Get("window/fullscreen")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, ok := fullscreen.Bool(); !ok || v != false {
		t.Fatalf("got (%v, %v), want (false, true)", v, ok)
	}

	left, err := root.Get("controls/left")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, ok := left.Char8(); !ok || v != 'a' {
		t.Fatalf("got (%v, %v), want ('a', true)", v, ok)
	}
}

func TestScenarioBAnonymousRootWideStrings(t *testing.T) {
	src := `{
  fr_FR {
    game_over_dialog {
      title: "Partie terminée",
      play_again_prompt: "Rejouer ?",
      play_again_accept: "Oui",
      play_again_refuse: "Non"
    }
  }
}`

	utf16Src := utf16.Encode([]rune(src))

	root, err := ParseUTF16(utf16Src)
	if err != nil {
		t.Fatalf("ParseUTF16: %v", err)
	}
	if root.Identifier() != "" {
		t.Fatalf("got identifier %q, want empty", root.Identifier())
	}

	title, err := root.Get("fr_FR/game_over_dialog/title")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	s, ok := title.String16()
	if !ok {
		t.Fatal("expected a 16-bit string")
	}
	if got := string(utf16.Decode(s)); got != "Partie terminée" {
		t.Fatalf("got %q, want %q", got, "Partie terminée")
	}
}

func TestScenarioCIntegerOverflow(t *testing.T) {
	_, err := Parse([]byte(`n: 9999999999`))
	if err == nil {
		t.Fatal("expected an overflow error")
	}
}

func TestScenarioDScanFailure(t *testing.T) {
	_, err := Parse([]byte(`a: @`))
	if err == nil {
		t.Fatal("expected a scan error")
	}
}

func TestScenarioFDuplicateIdentifiersPreserved(t *testing.T) {
	root, err := Parse([]byte(`r { x: 1, x: 2 }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	first, _ := children[0].Int()
	second, _ := children[1].Int()
	if first != 1 || second != 2 {
		t.Fatalf("got (%d, %d), want (1, 2)", first, second)
	}

	out, err := Emit(root, emit.Config{Style: emit.INLINE})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if string(out) != "r { x: 1, x: 2 }" {
		t.Fatalf("got %q", out)
	}
}
