// Package palette holds the ANSI escape sequences used for markup output.
package palette

const (
	Reset = "\x1b[0m"

	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	BoldRed    = "\x1b[31;1m"
	BoldYellow = "\x1b[33;1m"
	BoldBlue   = "\x1b[34;1m"
)
