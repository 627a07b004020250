package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Printer writes prefixed status lines, coloured only on a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w. Colour is enabled when w is a terminal.
func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, color: color}
}

// colorize applies color only if output is a TTY
func (p *Printer) colorize(color, msg string) string {
	if !p.color {
		return msg
	}
	return color + msg + Reset
}

func (p *Printer) prefixed(color, prefix, msg string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.colorize(color, prefix), msg)
}

// OK prints a success message with [OK] prefix in green
func (p *Printer) OK(msg string) { p.prefixed(Green, "[OK]", msg) }

// Error prints an error message with [ERROR] prefix in red
func (p *Printer) Error(msg string) { p.prefixed(Red, "[ERROR]", msg) }

// Warn prints a warning message with [WARN] prefix in yellow
func (p *Printer) Warn(msg string) { p.prefixed(Yellow, "[WARN]", msg) }

// Info prints an info message with [INFO] prefix in blue
func (p *Printer) Info(msg string) { p.prefixed(Blue, "[INFO]", msg) }

// Done prints a completion message with [DONE] prefix in green
func (p *Printer) Done(msg string) { p.prefixed(Green+Bold, "[DONE]", msg) }

// Title prints a section title with description
func (p *Printer) Title(title, desc string) {
	p.prefixed(Bold+Cyan, fmt.Sprintf("[%s]", title), desc)
}

// Indent prints an indented message
func (p *Printer) Indent(msg string) {
	_, _ = fmt.Fprintln(p.w, Indent(msg))
}

// Diff prints a unified-style diff, colouring added and removed lines.
func (p *Printer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = p.colorize(Bold, line)
		case strings.HasPrefix(line, "+"):
			line = p.colorize(Green, line)
		case strings.HasPrefix(line, "-"):
			line = p.colorize(Red, line)
		}
		p.Indent(line)
	}
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}
