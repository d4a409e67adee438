// Package batch evaluates many expressions concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
	"bigcalc/internal/observ"
)

// Options configures Run.
type Options struct {
	// Jobs bounds the number of concurrent evaluations; <= 0 means
	// GOMAXPROCS.
	Jobs  int
	Sink  ProgressSink
	Timer *observ.Timer
}

// Result is the outcome of one line. Err is set when the line failed to
// parse or evaluate; it never aborts the run.
type Result struct {
	Line   int             `json:"line" msgpack:"line"`
	Source string          `json:"source" msgpack:"source"`
	Expr   string          `json:"expr,omitempty" msgpack:"expr,omitempty"`
	Result *calc.Rendering `json:"result,omitempty" msgpack:"result,omitempty"`
	Error  string          `json:"error,omitempty" msgpack:"error,omitempty"`

	Value   bignum.Int    `json:"-" msgpack:"-"`
	Err     error         `json:"-" msgpack:"-"`
	Elapsed time.Duration `json:"-" msgpack:"-"`
}

// OK reports whether the line evaluated.
func (r Result) OK() bool { return r.Err == nil }

// Run evaluates every line and returns results in input order. The returned
// error is non-nil only when ctx is cancelled; results for lines that had
// not started are then left zero apart from Line and Source.
func Run(ctx context.Context, lines []Line, opts Options) ([]Result, error) {
	results := make([]Result, len(lines))
	if len(lines) == 0 {
		return results, nil
	}
	done := opts.Timer.Track("evaluate")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for i, ln := range lines {
		results[i] = Result{Line: ln.No, Source: ln.Text}
		emit(opts.Sink, Event{Line: ln.No, Source: ln.Text, Stage: StageParse, Status: StatusQueued})
	}

	// Each goroutine owns results[i]; no lock needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, ln := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = evalLine(ln, opts.Sink)
			return nil
		})
	}

	err := g.Wait()
	ok, failed := Count(results)
	done(fmt.Sprintf("%d lines, %d ok, %d failed", len(lines), ok, failed))
	return results, err
}

func evalLine(ln Line, sink ProgressSink) Result {
	start := time.Now()
	res := Result{Line: ln.No, Source: ln.Text}
	fail := func(stage Stage, err error) Result {
		res.Err = fmt.Errorf("line %d: %w", ln.No, err)
		res.Error = err.Error()
		res.Elapsed = time.Since(start)
		emit(sink, Event{Line: ln.No, Source: ln.Text, Stage: stage, Status: StatusError, Err: res.Err, Elapsed: res.Elapsed})
		return res
	}

	emit(sink, Event{Line: ln.No, Source: ln.Text, Stage: StageParse, Status: StatusWorking})
	expr, err := calc.ParseExpr(ln.Text)
	if err != nil {
		return fail(StageParse, err)
	}
	res.Expr = expr.String()

	emit(sink, Event{Line: ln.No, Source: ln.Text, Stage: StageEval, Status: StatusWorking})
	v, err := expr.Eval()
	if err != nil {
		return fail(StageEval, err)
	}
	r := calc.Render(v)
	res.Value = v
	res.Result = &r
	res.Elapsed = time.Since(start)
	emit(sink, Event{Line: ln.No, Source: ln.Text, Stage: StageEval, Status: StatusDone, Elapsed: res.Elapsed})
	return res
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// Count splits results into evaluated and failed lines. Lines never started
// because of cancellation count as neither.
func Count(results []Result) (ok, failed int) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Result != nil:
			ok++
		}
	}
	return ok, failed
}
