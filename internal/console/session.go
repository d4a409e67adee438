// Package console runs the interactive two-operand calculator.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
)

// ErrInterrupted ends a session when input runs out or the context is
// cancelled before both operands were read.
var ErrInterrupted = errors.New("interrupted")

// Session reads two integers and prints every operation on them.
type Session struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Color enables terminal colour escapes.
	Color bool
	// HideBaseM drops the base-M renderings from the output.
	HideBaseM bool
}

// Run prints the banner, prompts for a and b (re-prompting on invalid
// input), prints the report and returns it.
func (s *Session) Run(ctx context.Context) (calc.Report, error) {
	out := NewPrinter(s.Out, s.Color, !s.HideBaseM)
	errOut := NewPrinter(s.Err, s.Color, false)
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := readLines(readCtx, s.In)

	out.Banner()
	a, err := s.prompt(ctx, lines, out, errOut, "Enter the first integer a: ")
	if err != nil {
		return calc.Report{}, err
	}
	b, err := s.prompt(ctx, lines, out, errOut, "Enter the second integer b: ")
	if err != nil {
		return calc.Report{}, err
	}

	rep := calc.NewReport(a, b)
	out.Report(rep)
	return rep, nil
}

// Goodbye prints the closing line.
func (s *Session) Goodbye(interrupted bool) {
	if interrupted {
		fmt.Fprintln(s.Out, "\nInterrupted by user.")
	}
	fmt.Fprintln(s.Out, "\nDone.")
}

func (s *Session) prompt(ctx context.Context, lines <-chan string, out, errOut *Printer, text string) (bignum.Int, error) {
	for {
		fmt.Fprint(s.Out, text)
		var line string
		select {
		case <-ctx.Done():
			return bignum.Int{}, fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
		case l, ok := <-lines:
			if !ok {
				return bignum.Int{}, ErrInterrupted
			}
			line = l
		}
		x, err := calc.ParseOperand(line)
		if err == nil {
			return x, nil
		}
		errOut.Error("%v, please enter an integer", err)
	}
}

// readLines feeds lines from r until EOF or until ctx is done. A goroutine
// blocked in Read stays blocked until the reader returns.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
