package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
)

// Printer renders banners and reports for humans.
type Printer struct {
	w       io.Writer
	heading *color.Color
	label   *color.Color
	value   *color.Color
	failure *color.Color
	// BaseM adds the base-M rendering next to every decimal value.
	BaseM bool
}

// NewPrinter returns a Printer writing to w. Colour escapes are emitted only
// when colour is true.
func NewPrinter(w io.Writer, colour, baseM bool) *Printer {
	p := &Printer{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.Bold),
		value:   color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		BaseM:   baseM,
	}
	for _, c := range []*color.Color{p.heading, p.label, p.value, p.failure} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Banner prints the calculator header with the representation constants.
func (p *Printer) Banner() {
	p.heading.Fprintln(p.w, "=== Big integer calculator ===")
	fmt.Fprintf(p.w, "Base M = 2^15 = %d\n", bignum.Base)
	fmt.Fprintf(p.w, "Digits N = %d\n", bignum.MaxDigits)
	fmt.Fprintln(p.w)
}

// Report prints the operands followed by every result row.
func (p *Printer) Report(rep calc.Report) {
	fmt.Fprintln(p.w)
	p.label.Fprintln(p.w, "Operands:")
	p.line("a", rep.A)
	p.line("b", rep.B)

	for _, row := range rep.Rows {
		fmt.Fprintln(p.w)
		title := capitalize(row.Name)
		if row.Result == nil {
			p.label.Fprintf(p.w, "%s: ", title)
			p.failure.Fprintf(p.w, "error - %s\n", row.Error)
			continue
		}
		p.label.Fprintf(p.w, "%s:\n", title)
		p.line("a "+row.Symbol+" b", *row.Result)
	}
}

// Error prints a user-facing error line.
func (p *Printer) Error(format string, args ...any) {
	p.failure.Fprintf(p.w, "error: "+format+"\n", args...)
}

func (p *Printer) line(name string, r calc.Rendering) {
	fmt.Fprintf(p.w, "%s = %s (decimal)\n", name, p.value.Sprint(r.Decimal))
	if p.BaseM {
		fmt.Fprintf(p.w, "%s = %s (base M = 2^15)\n", name, p.value.Sprint(r.BaseM))
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
