package rcl

import (
	"strings"
	"testing"
)

func TestTextRejectsNewlines(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for embedded newline")
		}
	}()
	Text("one\ntwo")
}

func TestTallRejectsNewlines(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for embedded newline")
		}
	}()
	Tall(",\n")
}

func TestLines(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"one":            "one\n",
		"one\ntwo":       "one\ntwo\n",
		"one\ntwo\n":     "one\ntwo\n",
		"gap\n\nafter":   "gap\n\nafter\n",
		"trailing\n\n\n": "trailing\n\n\n",
	}
	for input, want := range cases {
		if got := renderWidth(Lines(input), 80); got != want {
			t.Fatalf("Lines(%q): got %q want %q", input, got, want)
		}
	}
}

func TestLinesCollapsesSingleFragment(t *testing.T) {
	doc := Lines("solo")
	if doc.node == nil || doc.node.kind != docText {
		t.Fatalf("expected a bare text node, got %+v", doc.node)
	}
}

func TestConcatFlattens(t *testing.T) {
	doc := Concat(Concat(Text("a"), Text("b")), Text("c"))
	if doc.node.kind != docConcat || len(doc.node.children) != 3 {
		t.Fatalf("expected three flattened children, got %+v", doc.node)
	}
}

func TestConcatElidesEmpty(t *testing.T) {
	if doc := Concat(); doc.node != nil {
		t.Fatalf("empty concat should be the empty document")
	}
	if doc := Concat(Empty(), Concat(), Text("")); doc.node != nil {
		t.Fatalf("concat of empties should be the empty document")
	}
	single := Text("x")
	if doc := Concat(Empty(), single, Empty()); doc.node != single.node {
		t.Fatalf("empty operands should disappear")
	}
}

func TestConcatIsIdentityStable(t *testing.T) {
	// Repeated composition with the identity must not grow the tree.
	doc := Text("x")
	for i := 0; i < 1000; i++ {
		doc = Concat(doc, Empty())
	}
	if doc.node.kind != docText {
		t.Fatalf("identity composition grew the tree: %+v", doc.node)
	}
}

func TestJoin(t *testing.T) {
	sep := Concat(Text(","), Sep)
	if doc := Join(nil, sep); doc.node != nil {
		t.Fatalf("joining nothing should be empty")
	}
	one := Join([]Doc{Text("a")}, sep)
	if got := renderWidth(one, 80); got != "a\n" {
		t.Fatalf("single element join: %q", got)
	}
	three := Join([]Doc{Text("a"), Text("b"), Text("c")}, sep)
	if got := renderWidth(Group(three), 80); got != "a, b, c\n" {
		t.Fatalf("join: %q", got)
	}
}

func TestForcedTallComputedAtConstruction(t *testing.T) {
	plain := Group(Text("a"), Sep, Text("b"))
	if plain.isForcedTall() {
		t.Fatalf("no break should not force tall")
	}
	for name, doc := range map[string]Doc{
		"hard break":    Concat(Text("a"), HardBreak),
		"raw break":     Concat(Text("a"), RawBreak),
		"under indent":  Indent(Lines("a\nb")),
		"under markup":  Lines("a\nb").WithMarkup(MarkupString),
		"nested group":  Group(Group(Text("a"), HardBreak)),
		"lines content": Lines("a\nb"),
	} {
		if !doc.isForcedTall() {
			t.Fatalf("%s: expected forced tall", name)
		}
	}
}

func TestCloneIsStructurallyIndependent(t *testing.T) {
	doc := elements(Text("a"), Lines("b\nc").WithMarkup(MarkupComment))
	clone := doc.Clone()
	if clone.node == doc.node {
		t.Fatalf("clone shares the root node")
	}
	if doc.node.inner != nil && clone.node.inner == doc.node.inner {
		t.Fatalf("clone shares inner nodes")
	}
	if got, want := renderWidth(clone, 80), renderWidth(doc, 80); got != want {
		t.Fatalf("clone renders differently: %q vs %q", got, want)
	}
}

func TestJoinSharesSeparatorCheaply(t *testing.T) {
	sep := Concat(Text(","), Sep)
	doc := Join([]Doc{Text("a"), Text("b"), Text("c")}, sep)
	children := doc.node.children
	var seps []*docNode
	for _, c := range children {
		if c.kind == docText && c.text == "," {
			seps = append(seps, c)
		}
	}
	if len(seps) != 2 || seps[0] != seps[1] {
		t.Fatalf("separator should be shared, not copied")
	}
}

func TestTextWidthIsCached(t *testing.T) {
	doc := Text(strings.Repeat("x", 40))
	if doc.node.width != 40 {
		t.Fatalf("cached width = %d, want 40", doc.node.width)
	}
}
