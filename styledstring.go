package rcl

import (
	"io"
	"strings"
)

// fragment is a run of text with one markup tag applied.
type fragment struct {
	text   string
	markup Markup
}

// StyledString is a string pieced together from fragments that carry markup.
// It is the output representation of the renderer: text accumulates as
// tagged fragments, and escape sequences are produced only at serialization
// time, so markup never interferes with width accounting or rollback.
type StyledString struct {
	frags []fragment
}

// Push appends a fragment. Empty fragments are ignored.
func (s *StyledString) Push(text string, markup Markup) {
	if text == "" {
		return
	}
	s.frags = append(s.frags, fragment{text: text, markup: markup})
}

// Fragments returns the current number of fragments.
func (s *StyledString) Fragments() int {
	return len(s.frags)
}

// IsEmpty reports whether the string holds no fragments.
func (s *StyledString) IsEmpty() bool {
	return len(s.frags) == 0
}

// Truncate drops fragments, restoring the string to a previous length as
// returned by Fragments.
func (s *StyledString) Truncate(n int) {
	s.frags = s.frags[:n]
}

// TrimSpacesEnd removes all spaces at the end of the string.
func (s *StyledString) TrimSpacesEnd() {
	for len(s.frags) > 0 {
		last := &s.frags[len(s.frags)-1]
		trimmed := strings.TrimRight(last.text, " ")
		if trimmed == "" {
			s.frags = s.frags[:len(s.frags)-1]
			continue
		}
		last.text = trimmed
		break
	}
}

// String returns the text with all markup discarded.
func (s *StyledString) String() string {
	var b strings.Builder
	for _, f := range s.frags {
		b.WriteString(f.text)
	}
	return b.String()
}

// Emit writes the string to w with the given markup mode. Writer errors
// propagate unmodified.
func (s *StyledString) Emit(w io.Writer, mode MarkupMode) error {
	if mode == MarkupModeANSI {
		return s.emitANSI(w)
	}
	return s.emitPlain(w)
}

func (s *StyledString) emitPlain(w io.Writer) error {
	for _, f := range s.frags {
		if _, err := io.WriteString(w, f.text); err != nil {
			return err
		}
	}
	return nil
}

// emitANSI writes fragments with escape sequences interleaved, switching
// styles only when the markup changes between adjacent fragments.
func (s *StyledString) emitANSI(w io.Writer) error {
	markup := MarkupNone
	for _, f := range s.frags {
		if f.markup != markup {
			if _, err := io.WriteString(w, switchANSI(f.markup)); err != nil {
				return err
			}
			markup = f.markup
		}
		if _, err := io.WriteString(w, f.text); err != nil {
			return err
		}
	}
	if markup != MarkupNone {
		if _, err := io.WriteString(w, switchANSI(MarkupNone)); err != nil {
			return err
		}
	}
	return nil
}
