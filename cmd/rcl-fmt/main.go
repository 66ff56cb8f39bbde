// Command rcl-fmt pretty-prints JSON documents through the rcl layout
// engine: collections that fit the width budget render on one line, the
// rest break across indented lines, with ANSI highlighting on terminals.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/qezz/rcl"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("github.com/qezz/rcl")
}

func main() {
	var (
		widthFlag int
		colorFlag string
		outPath   string
		verbose   bool
	)

	flags := pflag.NewFlagSet("rcl-fmt", pflag.ExitOnError)
	flags.IntVarP(&widthFlag, "width", "w", 0, "Target width override (0 uses terminal width if available)")
	flags.StringVarP(&colorFlag, "color", "c", "auto", "Colored output: auto|on|off")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: rcl-fmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, JSON is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, verbose)

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	cfg := rcl.DefaultConfig()
	cfg.Width = resolveWidth(widthFlag)
	cfg.Markup, err = resolveColor(colorFlag, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorFlag, err)
		os.Exit(2)
	}
	logger.Debug("resolved configuration", "width", cfg.Width, "ansi", cfg.Markup == rcl.MarkupModeANSI)

	inputs := flags.Args()
	if len(inputs) == 0 {
		if err := renderInput(logger, writer, "stdin", os.Stdin, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
			os.Exit(1)
		}
		return
	}
	for _, path := range inputs {
		if err := renderFile(logger, writer, path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// newLogger creates the diagnostics logger. Debug messages are filtered out
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func renderFile(logger *log.Logger, w io.Writer, path string, cfg rcl.Config) error {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return renderInput(logger, w, path, f, cfg)
}

func renderInput(logger *log.Logger, w io.Writer, name string, r io.Reader, cfg rcl.Config) error {
	start := time.Now()
	doc, err := rcl.DocFromJSON(r)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "input", name, "elapsed", time.Since(start))

	start = time.Now()
	if err := rcl.RenderTo(w, doc, cfg); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Debug("rendered input", "input", name, "elapsed", time.Since(start))
	return nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveColor(mode string, w io.Writer) (rcl.MarkupMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if f, ok := w.(*os.File); ok {
			return rcl.DefaultMarkupMode(f), nil
		}
		return rcl.MarkupModeNone, nil
	case "on", "true", "1", "yes":
		return rcl.MarkupModeANSI, nil
	case "off", "false", "0", "no":
		return rcl.MarkupModeNone, nil
	default:
		return rcl.MarkupModeNone, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
