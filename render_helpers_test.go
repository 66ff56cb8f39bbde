package rcl

import "regexp"

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderWidth(doc Doc, width int) string {
	return Render(doc, Config{Width: width, Markup: MarkupModeNone})
}

func renderANSI(doc Doc, width int) string {
	return Render(doc, Config{Width: width, Markup: MarkupModeANSI})
}

// elements builds the canonical bracketed collection used across the
// rendering tests: a group that is one line wide and one element per
// indented line with a trailing comma tall.
func elements(elems ...Doc) Doc {
	return Group(
		Text("["),
		SoftBreak,
		Indent(Join(elems, Concat(Text(","), Sep)), Tall(",")),
		SoftBreak,
		Text("]"),
	)
}
