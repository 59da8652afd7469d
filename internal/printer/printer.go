// Package printer writes human-facing CLI messages with color. Color is
// dropped automatically when the output is not a terminal or NO_COLOR is set.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Printer sends results to Out and diagnostics to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer over out and errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut}
}

// Success prints a green message with a checkmark prefix to Out.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(p.Out, msg)
}

// Info prints an uncolored message to Out.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, format, a...)
}

// Warning prints a yellow message to Err.
func (p *Printer) Warning(format string, a ...any) {
	yellow.Fprintf(p.Err, "warning: %s", fmt.Sprintf(format, a...))
}

// Error prints a red title, an explanation and numbered suggestions to Err.
func (p *Printer) Error(title, explanation string, suggestions []string) {
	red.Fprintf(p.Err, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.Err, "\n%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.Err, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.Err, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(p.Err, "  %d. %s\n", i+1, s)
		}
	}
}

// Partition prints the parts of a k-partition on one line to Err, the last
// part in cyan: "[4 | 2 | 1 3 5 6]".
func (p *Printer) Partition(label string, parts [][]int) {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(" | ")
		}
		if i == len(parts)-1 {
			b.WriteString(cyan.Sprint(joinInts(part)))
			continue
		}
		b.WriteString(joinInts(part))
	}
	fmt.Fprintf(p.Err, "%s: [%s]\n", label, b.String())
}

func joinInts(xs []int) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, " ")
}
