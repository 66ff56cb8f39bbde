package rcl

import (
	"os"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestStrippedANSIEqualsPlain(t *testing.T) {
	doc := elements(
		Text("let").WithMarkup(MarkupKeyword),
		Text("answer").WithMarkup(MarkupIdentifier),
		Text("42").WithMarkup(MarkupNumber),
		Lines("// a\n// b").WithMarkup(MarkupComment),
	)
	for _, width := range []int{80, 20, 5} {
		plain := renderWidth(doc, width)
		colored := renderANSI(doc, width)
		if stripANSI(colored) != plain {
			t.Fatalf("width %d: markup altered text\nplain:   %q\nstripped: %q",
				width, plain, stripANSI(colored))
		}
	}
}

func TestMarkupDoesNotCountAgainstWidth(t *testing.T) {
	doc := elements(
		Text("elem0").WithMarkup(MarkupIdentifier),
		Text("elem1").WithMarkup(MarkupIdentifier),
		Text("elem2").WithMarkup(MarkupIdentifier),
	)
	colored := renderANSI(doc, 21)
	for i, line := range strings.Split(strings.TrimSuffix(colored, "\n"), "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 21 {
			t.Fatalf("line %d printable width %d exceeds budget: %q", i+1, w, line)
		}
	}
	if strings.Count(stripANSI(colored), "\n") != 1 {
		t.Fatalf("escape sequences pushed the group tall: %q", colored)
	}
}

func TestMarkupSpansBreaks(t *testing.T) {
	doc := Lines("one\ntwo").WithMarkup(MarkupError)
	colored := renderANSI(doc, 80)
	want := "\x1b[31;1mone\ntwo\x1b[0m\n"
	if colored != want {
		t.Fatalf("got %q want %q", colored, want)
	}
}

func TestNestedSameMarkupEmitsNoExtraSwitch(t *testing.T) {
	doc := Concat(
		Text("a"),
		Text("b").WithMarkup(MarkupNumber),
	).WithMarkup(MarkupNumber)
	colored := renderANSI(doc, 80)
	if got := strings.Count(colored, "\x1b[36m"); got != 1 {
		t.Fatalf("expected one switch to cyan, got %d in %q", got, colored)
	}
}

func TestMarkupModeNoneEmitsNoEscapes(t *testing.T) {
	doc := Text("x").WithMarkup(MarkupError)
	if out := renderWidth(doc, 80); strings.Contains(out, "\x1b") {
		t.Fatalf("plain mode leaked escapes: %q", out)
	}
}

func TestSwitchANSISequences(t *testing.T) {
	cases := map[Markup]string{
		MarkupNone:       "\x1b[0m",
		MarkupError:      "\x1b[31;1m",
		MarkupWarning:    "\x1b[33;1m",
		MarkupTrace:      "\x1b[34;1m",
		MarkupHighlight:  "\x1b[37m",
		MarkupBuiltin:    "\x1b[31m",
		MarkupComment:    "\x1b[37m",
		MarkupIdentifier: "\x1b[34m",
		MarkupKeyword:    "\x1b[32m",
		MarkupNumber:     "\x1b[36m",
		MarkupString:     "\x1b[31m",
		MarkupType:       "\x1b[35m",
	}
	for markup, want := range cases {
		if got := switchANSI(markup); got != want {
			t.Fatalf("switchANSI(%d) = %q, want %q", markup, got, want)
		}
	}
}

func TestColorDisabledByEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !colorDisabledByEnv() {
		t.Fatalf("nonempty NO_COLOR should disable color")
	}
	// A set-but-empty NO_COLOR does not disable color.
	t.Setenv("NO_COLOR", "")
	if colorDisabledByEnv() {
		t.Fatalf("empty NO_COLOR should not disable color")
	}
}

func TestDefaultMarkupModeForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer func() { _ = f.Close() }()
	if mode := DefaultMarkupMode(f); mode != MarkupModeNone {
		t.Fatalf("regular file should not be colored")
	}
	if cfg := ConfigForTerminal(f); cfg.Markup != MarkupModeNone || cfg.Width != 80 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
