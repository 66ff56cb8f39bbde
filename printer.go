package rcl

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fitResult reports whether printing stayed within the width budget.
type fitResult uint8

const (
	// fits means the content stayed within the allocated width.
	fits fitResult = iota
	// overflow means the content exceeded the target width.
	overflow
)

// merge returns the worst of two results; overflow dominates.
func (r fitResult) merge(other fitResult) fitResult {
	if r == overflow || other == overflow {
		return overflow
	}
	return fits
}

var indentSpaces = strings.Repeat(" ", 64)

// printer is the mutable rendering state for a single render call. It
// tracks the column position, indentation depth, and active markup while
// fragments accumulate in the output buffer.
type printer struct {
	// out is the buffer where output accumulates.
	out StyledString

	// width is the target the renderer tries not to exceed.
	width int

	// lineWidth is the display width so far of the line being written.
	lineWidth int

	// indent is the current indentation, counted in spaces.
	indent int

	// pendingIndent is set while indentation has not been written for the
	// current line.
	pendingIndent bool

	// markup is the currently applied markup tag.
	markup Markup

	// mode is how markup is applied, fixed for the render.
	mode MarkupMode
}

func newPrinter(cfg Config) *printer {
	return &printer{
		width:         cfg.Width,
		pendingIndent: true,
		mode:          cfg.Markup,
	}
}

// speculate executes f against the printer. If the result overflowed, the
// buffer, line width, and pending-indent flag are rolled back to their state
// before the call, discarding everything f wrote. Indentation depth and
// active markup are restored by their own scoped helpers and never change
// across a failed attempt.
func (p *printer) speculate(f func(*printer) fitResult) fitResult {
	frags := p.out.Fragments()
	lineWidth := p.lineWidth
	pendingIndent := p.pendingIndent
	result := f(p)
	if result == overflow {
		p.out.Truncate(frags)
		p.lineWidth = lineWidth
		p.pendingIndent = pendingIndent
	}
	return result
}

// indented executes f under one extra indentation level. The depth is
// restored on every exit path.
func (p *printer) indented(f func(*printer) fitResult) fitResult {
	p.indent += 2
	result := f(p)
	p.indent -= 2
	return result
}

// withMarkup executes f with the markup tag applied. The escape sequences
// for the transitions are produced at serialization time, only where
// adjacent fragments differ, so nesting the same tag emits nothing extra.
func (p *printer) withMarkup(m Markup, f func(*printer) fitResult) fitResult {
	prev := p.markup
	p.markup = m
	result := f(p)
	p.markup = prev
	return result
}

// writeIndent writes the indentation for the current line, if pending.
func (p *printer) writeIndent() {
	if !p.pendingIndent {
		return
	}
	left := p.indent
	for left > 0 {
		n := min(left, len(indentSpaces))
		p.out.Push(indentSpaces[:n], p.markup)
		left -= n
	}
	p.lineWidth += p.indent
	p.pendingIndent = false
}

// fitsWidth reports whether the current line still fits.
func (p *printer) fitsWidth() fitResult {
	if p.lineWidth > p.width {
		return overflow
	}
	return fits
}

// pushText appends a fragment whose display width is already known.
func (p *printer) pushText(text string, width int) fitResult {
	if strings.ContainsRune(text, '\n') {
		panic("rcl: use newline to push a newline")
	}
	p.writeIndent()
	p.out.Push(text, p.markup)
	p.lineWidth += width
	return p.fitsWidth()
}

// pushRune appends a single character.
func (p *printer) pushRune(r rune) fitResult {
	if r == '\n' {
		panic("rcl: use newline to push a newline")
	}
	p.writeIndent()
	p.out.Push(string(r), p.markup)
	p.lineWidth += runewidth.RuneWidth(r)
	return p.fitsWidth()
}

// newline terminates the current line. Trailing spaces are stripped from
// the line just completed so that wide fragments followed by a forced break
// cannot leave invisible whitespace behind. A newline always fits: overflow
// of the closed line was already reported by whatever pushed onto it.
func (p *printer) newline() fitResult {
	if p.out.IsEmpty() {
		panic("rcl: newline on empty output would create leading whitespace")
	}
	p.out.TrimSpacesEnd()
	p.out.Push("\n", p.markup)
	p.lineWidth = 0
	p.pendingIndent = true
	return fits
}

// rawNewline emits a newline without indentation after it, preserving
// layout inside multi-line literals.
func (p *printer) rawNewline() fitResult {
	result := p.newline()
	p.pendingIndent = false
	return result
}

// flushNewline emits a newline unless the printer is still at the start of
// a line. It reports whether a newline was emitted.
func (p *printer) flushNewline() bool {
	if p.pendingIndent {
		return false
	}
	p.newline()
	return true
}
