// Package output provides terminal output formatting for adopctl.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// ColorMode represents color output mode.
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default).
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on.
	ColorAlways
	// ColorNever forces colors off.
	ColorNever
)

// ParseColorMode parses a string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and
// environment.
func ResolveColors(mode ColorMode, configColors bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return configColors
	}
}

// Printer handles formatted output to the terminal. It also satisfies
// adopcion.Notifier so API failure notices surface as colored messages.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer writing to stdout/stderr.
func NewPrinter(useColors bool) *Printer {
	return &Printer{
		out:       os.Stdout,
		err:       os.Stderr,
		useColors: useColors,
	}
}

// NewPrinterWithWriters creates a printer with custom writers, for tests.
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

// Warn prints a warning message to stderr.
func (p *Printer) Warn(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "! "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message to stderr.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Plain prints without any styling.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Notify implements adopcion.Notifier: the toast analog for a terminal.
func (p *Printer) Notify(n adopcion.Notice) {
	switch n.Severity {
	case adopcion.SeverityError:
		p.Error("%s", n.Message)
	case adopcion.SeveritySuccess:
		p.Success("%s", n.Message)
	default:
		p.Info("%s", n.Message)
	}
}
