package rcl

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Doc is a document tree that can be pretty-printed.
//
// Every node can be printed in two ways: wide or tall. The renderer prints
// as many nodes as possible in wide mode without exceeding the width budget.
// When a node is printed tall, all of its parents are printed tall as well.
//
// The unit of the wide/tall choice is the group, created with Group. A
// Concat or Indent does not itself represent a choice; the content of a
// group is either all wide or all tall. Consider:
//
//	Group(
//		Text("["),
//		SoftBreak,
//		Indent(
//			Text("elem0"), Text(","), Sep,
//			Text("elem1"), Text(","), Sep,
//			Text("elem2"), Tall(","),
//		),
//		SoftBreak,
//		Text("]"),
//	)
//
// This renders either "[elem0, elem1, elem2]" or one element per indented
// line, but never the half-broken middle ground where the brackets break
// while the elements stay on one line. That layout is still expressible, by
// wrapping the Indent in its own Group.
//
// The zero value is the empty document. Doc values are cheap to copy and
// share structure freely; the tree is immutable once built.
type Doc struct {
	node *docNode
}

type docKind uint8

const (
	docText docKind = iota
	docWhenTall
	docSep
	docSoftBreak
	docHardBreak
	docRawBreak
	docConcat
	docGroup
	docIndent
	docFlushIndent
	docMarkup
)

// docNode is a shared, immutable tree node. The forcedTall flag is computed
// at construction so that group decisions do not re-walk deep subtrees.
type docNode struct {
	kind       docKind
	text       string
	width      int
	children   []*docNode
	inner      *docNode
	markup     Markup
	forcedTall bool
}

// Leaf documents with fixed rendering behavior.
var (
	// Sep renders as one space in wide mode and a newline in tall mode.
	Sep = Doc{node: &docNode{kind: docSep}}

	// SoftBreak renders as nothing in wide mode and a newline in tall mode.
	SoftBreak = Doc{node: &docNode{kind: docSoftBreak}}

	// HardBreak is a newline. It forces tall mode onto all its parents.
	HardBreak = Doc{node: &docNode{kind: docHardBreak, forcedTall: true}}

	// RawBreak is a newline without indentation after it, for preserving
	// literal multi-line text. Like HardBreak it forces tall mode.
	RawBreak = Doc{node: &docNode{kind: docRawBreak, forcedTall: true}}
)

// Empty returns the empty document. It is the identity element for Concat
// and disappears when concatenated with anything else.
func Empty() Doc {
	return Doc{}
}

// Text returns a document fragment for a literal string. The string must
// not contain newlines; use Lines for text with line breaks.
func Text(s string) Doc {
	if strings.ContainsRune(s, '\n') {
		panic("rcl: Text fragments cannot contain newlines, use Lines")
	}
	if s == "" {
		return Doc{}
	}
	return Doc{node: &docNode{kind: docText, text: s, width: runewidth.StringWidth(s)}}
}

// Lines splits s on newlines and returns the fragments interleaved with
// HardBreak. An empty string yields the empty document.
func Lines(s string) Doc {
	var nodes []*docNode
	rem := s
	for {
		i := strings.IndexByte(rem, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			nodes = append(nodes, Text(rem[:i]).node)
		}
		nodes = append(nodes, HardBreak.node)
		rem = rem[i+1:]
	}
	if rem != "" {
		nodes = append(nodes, Text(rem).node)
	}
	switch len(nodes) {
	case 0:
		return Doc{}
	case 1:
		return Doc{node: nodes[0]}
	}
	return Doc{node: newConcat(nodes)}
}

// Tall returns a fragment that is only emitted in tall mode. It is used for
// trailing commas that should appear in a tall collection but not in the
// wide form. The string must not contain newlines.
func Tall(s string) Doc {
	if strings.ContainsRune(s, '\n') {
		panic("rcl: Tall fragments cannot contain newlines, use Lines")
	}
	if s == "" {
		return Doc{}
	}
	return Doc{node: &docNode{kind: docWhenTall, text: s, width: runewidth.StringWidth(s)}}
}

// Concat composes documents in sequence. Empty operands disappear and
// nested concatenations are flattened, so repeated composition cannot grow
// the tree without bound.
func Concat(docs ...Doc) Doc {
	nodes := make([]*docNode, 0, len(docs))
	for _, d := range docs {
		switch {
		case d.node == nil:
		case d.node.kind == docConcat:
			nodes = append(nodes, d.node.children...)
		default:
			nodes = append(nodes, d.node)
		}
	}
	switch len(nodes) {
	case 0:
		return Doc{}
	case 1:
		return Doc{node: nodes[0]}
	}
	return Doc{node: newConcat(nodes)}
}

func newConcat(nodes []*docNode) *docNode {
	n := &docNode{kind: docConcat, children: nodes}
	for _, c := range nodes {
		if c.forcedTall {
			n.forcedTall = true
			break
		}
	}
	return n
}

// Group wraps the concatenation of docs in a group, the unit at which the
// renderer chooses between wide and tall mode.
func Group(docs ...Doc) Doc {
	return wrapDoc(docGroup, Concat(docs...))
}

// Indent wraps the concatenation of docs in an indented block. The
// indentation is materialized only in tall mode.
func Indent(docs ...Doc) Doc {
	return wrapDoc(docIndent, Concat(docs...))
}

// FlushIndent is a newline plus indented block. If the current line already
// has content, a newline is emitted and the block is indented; at the start
// of a line it behaves exactly like its content. In wide mode it is a
// no-op wrapper. It is used for content that should hang under something in
// its entirety rather than keep its opening fragments on the same line.
func FlushIndent(docs ...Doc) Doc {
	return wrapDoc(docFlushIndent, Concat(docs...))
}

func wrapDoc(kind docKind, inner Doc) Doc {
	if inner.node == nil {
		return Doc{}
	}
	return Doc{node: &docNode{kind: kind, inner: inner.node, forcedTall: inner.node.forcedTall}}
}

// WithMarkup applies a markup tag to the document's entire rendered extent,
// including any breaks within it.
func (d Doc) WithMarkup(m Markup) Doc {
	if d.node == nil {
		return Doc{}
	}
	return Doc{node: &docNode{kind: docMarkup, inner: d.node, markup: m, forcedTall: d.node.forcedTall}}
}

// Join interleaves separator between elements. The separator subtree is
// shared, not copied. An empty slice yields the empty document.
func Join(elements []Doc, separator Doc) Doc {
	if len(elements) == 0 {
		return Doc{}
	}
	joined := make([]Doc, 0, 2*len(elements)-1)
	for i, elem := range elements {
		if i > 0 {
			joined = append(joined, separator)
		}
		joined = append(joined, elem)
	}
	return Concat(joined...)
}

// Clone returns a structurally independent copy of the document. Doc trees
// are immutable, so sharing is normally free; Clone exists for callers that
// need a tree whose nodes are not shared with any other document.
func (d Doc) Clone() Doc {
	return Doc{node: d.node.clone()}
}

func (n *docNode) clone() *docNode {
	if n == nil {
		return nil
	}
	c := *n
	c.inner = n.inner.clone()
	if n.children != nil {
		c.children = make([]*docNode, len(n.children))
		for i, child := range n.children {
			c.children[i] = child.clone()
		}
	}
	return &c
}

// isForcedTall reports whether any node in the tree forces tall mode.
func (d Doc) isForcedTall() bool {
	return d.node != nil && d.node.forcedTall
}
