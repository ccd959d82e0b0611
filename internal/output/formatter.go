// Package output renders Zenith data for the terminal (CLIFormatter) or for
// scripts (JSONFormatter).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/manav03panchal/zenith/internal/finance"
)

// Format selects how commands print results.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode selects when ANSI styling is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseFormat accepts cli, json or plain.
func ParseFormat(s string) (Format, error) {
	return parseChoice(s, "format", FormatCLI, FormatJSON, FormatPlain)
}

// ParseColorMode accepts auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	return parseChoice(s, "color mode", ColorAuto, ColorAlways, ColorNever)
}

func parseChoice[T ~string](s, what string, choices ...T) (T, error) {
	if slices.Contains(choices, T(s)) {
		return T(s), nil
	}
	return "", fmt.Errorf("invalid %s %q (use %s, %s or %s)", what, s, choices[0], choices[1], choices[2])
}

// DefaultWidth is assumed when the writer is not a terminal.
const DefaultWidth = 80

// Formatter carries the output settings shared by CLI and JSON rendering.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
	Currency  string
}

// NewFormatter returns a CLI formatter writing to w. A nil w means stdout;
// an empty currency means finance.DefaultCurrency.
func NewFormatter(w io.Writer, currency string) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	if currency == "" {
		currency = finance.DefaultCurrency
	}
	return &Formatter{Writer: w, Format: FormatCLI, ColorMode: ColorAuto, Currency: currency}
}

// IsJSON reports whether output is JSON.
func (f *Formatter) IsJSON() bool {
	return f.Format == FormatJSON
}

func (f *Formatter) fd() (uintptr, bool) {
	file, ok := f.Writer.(*os.File)
	if !ok {
		return 0, false
	}
	return file.Fd(), true
}

// IsColorEnabled reports whether styling should be emitted. Plain output is
// never styled; auto styles only real terminals.
func (f *Formatter) IsColorEnabled() bool {
	if f.Format == FormatPlain || f.ColorMode == ColorNever {
		return false
	}
	if f.ColorMode == ColorAlways {
		return true
	}
	fd, ok := f.fd()
	return ok && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// Width returns the writer's terminal width, or DefaultWidth.
func (f *Formatter) Width() int {
	if fd, ok := f.fd(); ok {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// Money formats amount in the configured currency.
func (f *Formatter) Money(amount decimal.Decimal) string {
	return finance.Format(amount, f.Currency)
}

// Println writes a line.
func (f *Formatter) Println(a ...any) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf writes formatted text.
func (f *Formatter) Printf(format string, a ...any) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
