// Package rcl renders width-agnostic document trees to text, optionally
// annotated with ANSI terminal styles.
//
// The approach follows Philip Wadler's "A Prettier Printer": callers build a
// Doc tree describing how a piece of output could be laid out, and the
// renderer decides per Group whether the content renders on one line
// ("wide") or breaks across indented lines ("tall"). A Group's content is
// attempted wide first and rolled back to tall when it exceeds the width
// budget. Hard breaks force every enclosing group tall.
//
// Core properties:
//   - Doc trees are immutable once built; rendering only reads them
//   - Width accounting uses display width, not byte length
//   - Style markup is tracked per fragment and never leaks into widths
//   - A failed wide attempt rolls back with a buffer truncate, no re-scan
//
// Example:
//
//	doc := rcl.Group(
//		rcl.Text("["),
//		rcl.SoftBreak,
//		rcl.Indent(
//			rcl.Join([]rcl.Doc{rcl.Text("1"), rcl.Text("2")},
//				rcl.Concat(rcl.Text(","), rcl.Sep)),
//			rcl.Tall(","),
//		),
//		rcl.SoftBreak,
//		rcl.Text("]"),
//	)
//	fmt.Print(rcl.Render(doc, rcl.DefaultConfig()))
//
// renders "[1, 2]" at the default width, and one element per indented line
// with a trailing comma when the budget is too small.
package rcl
