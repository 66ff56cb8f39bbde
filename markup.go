package rcl

import (
	"os"

	"golang.org/x/term"

	"github.com/qezz/rcl/internal/palette"
)

// Markup is a style hint attached to a region of output. It carries no
// layout meaning; the renderer translates it to terminal escape sequences
// or drops it entirely, depending on the MarkupMode.
type Markup uint8

const (
	// MarkupNone applies default formatting.
	MarkupNone Markup = iota

	// MarkupError is used for error reporting, styled bold.
	MarkupError
	// MarkupWarning is used for warning reporting, styled bold.
	MarkupWarning
	// MarkupTrace is used for trace reporting, styled bold.
	MarkupTrace

	// MarkupHighlight makes something stand out in messages, playing a
	// similar role as backticks in Markdown.
	MarkupHighlight

	// The remaining tags are meant for syntax highlighting.

	MarkupBuiltin
	MarkupComment
	MarkupIdentifier
	MarkupKeyword
	MarkupNumber
	MarkupString
	MarkupType
)

// MarkupMode selects how markup hints are emitted. It is resolved once per
// render and immutable for the duration.
type MarkupMode uint8

const (
	// MarkupModeNone drops all markup hints.
	MarkupModeNone MarkupMode = iota
	// MarkupModeANSI emits markup as ANSI escape sequences.
	MarkupModeANSI
)

// switchANSI returns the escape sequence that switches the terminal to the
// style for m.
func switchANSI(m Markup) string {
	switch m {
	case MarkupError:
		return palette.BoldRed
	case MarkupWarning:
		return palette.BoldYellow
	case MarkupTrace:
		return palette.BoldBlue
	case MarkupHighlight:
		return palette.White
	case MarkupBuiltin:
		return palette.Red
	case MarkupComment:
		return palette.White
	case MarkupIdentifier:
		return palette.Blue
	case MarkupKeyword:
		return palette.Green
	case MarkupNumber:
		return palette.Cyan
	case MarkupString:
		return palette.Red
	case MarkupType:
		return palette.Magenta
	default:
		return palette.Reset
	}
}

// DefaultMarkupMode returns the markup mode to use when writing to f:
// MarkupModeANSI when f is a terminal and color is not disabled through the
// environment, MarkupModeNone otherwise.
func DefaultMarkupMode(f *os.File) MarkupMode {
	if shouldColor(f) {
		return MarkupModeANSI
	}
	return MarkupModeNone
}

// shouldColor reports whether ANSI colors should be used when writing to f.
// See https://no-color.org/ for the NO_COLOR convention.
func shouldColor(f *os.File) bool {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return !colorDisabledByEnv()
}

// colorDisabledByEnv reports whether NO_COLOR is set to a nonempty value.
// A set-but-empty NO_COLOR does not disable color.
func colorDisabledByEnv() bool {
	value, ok := os.LookupEnv("NO_COLOR")
	return ok && value != ""
}
