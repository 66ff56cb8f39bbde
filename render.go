package rcl

import (
	"io"
	"os"
	"strings"
)

// Config is the configuration for a render.
type Config struct {
	// Width is the column budget. The renderer tries to avoid creating
	// lines longer than this, but that is not always possible.
	Width int

	// Markup selects how color and other markup hints are output.
	Markup MarkupMode
}

// DefaultConfig returns the default render configuration: 80 columns, no
// markup.
func DefaultConfig() Config {
	return Config{Width: 80, Markup: MarkupModeNone}
}

// ConfigForTerminal returns the default configuration for writing to f,
// with markup enabled when f is a color-capable terminal.
func ConfigForTerminal(f *os.File) Config {
	cfg := DefaultConfig()
	cfg.Markup = DefaultMarkupMode(f)
	return cfg
}

// renderMode is whether a node is formatted in wide or tall mode.
type renderMode uint8

const (
	modeWide renderMode = iota
	modeTall
)

// Render pretty-prints the document and returns the result. The output
// always ends in exactly one trailing newline.
func Render(doc Doc, cfg Config) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = RenderTo(&b, doc, cfg)
	return b.String()
}

// RenderTo pretty-prints the document to w. A write error from w aborts the
// render and is returned unmodified; partial output is not consistent and
// should be discarded by the caller.
func RenderTo(w io.Writer, doc Doc, cfg Config) error {
	p := newPrinter(cfg)
	if doc.node != nil {
		// The root starts tall: the outermost context has nowhere to fall
		// back to, and anything renderable wide stays renderable through
		// groups choosing wide for themselves.
		doc.node.printTo(p, modeTall)
	}
	p.flushNewline()
	return p.out.Emit(w, cfg.Markup)
}

// printTo renders the node against the chosen mode, writing to the printer
// as a side effect. Once a choice commits, its output is final.
func (n *docNode) printTo(p *printer, mode renderMode) fitResult {
	switch n.kind {
	case docText:
		return p.pushText(n.text, n.width)

	case docWhenTall:
		if mode == modeTall {
			return p.pushText(n.text, n.width)
		}
		return fits

	case docSep:
		if mode == modeTall {
			return p.newline()
		}
		return p.pushRune(' ')

	case docSoftBreak:
		if mode == modeTall {
			return p.newline()
		}
		return fits

	case docHardBreak:
		if mode == modeWide {
			panic("rcl: HardBreak reached in wide mode")
		}
		return p.newline()

	case docRawBreak:
		if mode == modeWide {
			panic("rcl: RawBreak reached in wide mode")
		}
		return p.rawNewline()

	case docConcat:
		result := fits
		for _, child := range n.children {
			result = result.merge(child.printTo(p, mode))
		}
		return result

	case docGroup:
		inner := n.inner
		if inner.forcedTall {
			// The caller already committed to tall mode; there is no
			// choice to make here.
			return inner.printTo(p, modeTall)
		}
		if mode == modeWide {
			// An ancestor committed to wide, so the content must be wide.
			return inner.printTo(p, modeWide)
		}
		if p.speculate(func(p *printer) fitResult {
			return inner.printTo(p, modeWide)
		}) == overflow {
			// The tall pass is final and may itself overflow, which is
			// accepted when no layout fits the budget.
			return inner.printTo(p, modeTall)
		}
		return fits

	case docIndent:
		if mode == modeWide {
			return n.inner.printTo(p, mode)
		}
		return p.indented(func(p *printer) fitResult {
			return n.inner.printTo(p, mode)
		})

	case docFlushIndent:
		if mode == modeWide {
			return n.inner.printTo(p, mode)
		}
		if p.flushNewline() {
			return p.indented(func(p *printer) fitResult {
				return n.inner.printTo(p, mode)
			})
		}
		return n.inner.printTo(p, mode)

	case docMarkup:
		return p.withMarkup(n.markup, func(p *printer) fitResult {
			return n.inner.printTo(p, mode)
		})

	default:
		panic("rcl: unknown document node")
	}
}
