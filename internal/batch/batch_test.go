package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
	"bigcalc/internal/observ"
)

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordSink) forLine(no int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if e.Line == no {
			out = append(out, e)
		}
	}
	return out
}

func TestReadLines(t *testing.T) {
	input := "# header\n\n1 + 2\n   \n  # indented comment\n  40000 * 3  \n"
	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []Line{{No: 3, Text: "1 + 2"}, {No: 6, Text: "40000 * 3"}}
	if len(lines) != len(want) {
		t.Fatalf("ReadLines = %+v, want %+v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestRunOrderAndErrors(t *testing.T) {
	lines := []Line{
		{No: 1, Text: "1 + 2"},
		{No: 2, Text: "7 / 0"},
		{No: 3, Text: "nope"},
		{No: 4, Text: "-7 / 2"},
		{No: 5, Text: "12 % 5"},
	}
	sink := &recordSink{}
	timer := observ.NewTimer()
	results, err := Run(context.Background(), lines, Options{Jobs: 2, Sink: sink, Timer: timer})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(lines) {
		t.Fatalf("got %d results, want %d", len(results), len(lines))
	}
	for i, r := range results {
		if r.Line != lines[i].No || r.Source != lines[i].Text {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
	}

	if results[0].Result == nil || results[0].Result.Decimal != "3" || results[0].Expr != "1 + 2" {
		t.Fatalf("line 1 = %+v", results[0])
	}
	if !errors.Is(results[1].Err, bignum.ErrDivisionByZero) || !strings.HasPrefix(results[1].Err.Error(), "line 2:") {
		t.Fatalf("line 2 err = %v", results[1].Err)
	}
	if !errors.Is(results[2].Err, calc.ErrBadExpr) {
		t.Fatalf("line 3 err = %v", results[2].Err)
	}
	if results[3].Value != bignum.FromInt64(-3) {
		t.Fatalf("line 4 value = %v, want -3", results[3].Value)
	}
	if !errors.Is(results[4].Err, calc.ErrUnknownOp) {
		t.Fatalf("line 5 err = %v", results[4].Err)
	}

	ok, failed := Count(results)
	if ok != 2 || failed != 3 {
		t.Fatalf("Count = %d ok, %d failed", ok, failed)
	}

	rep := timer.Report()
	if len(rep.Phases) != 1 || rep.Phases[0].Name != "evaluate" || rep.Phases[0].Note != "5 lines, 2 ok, 3 failed" {
		t.Fatalf("timer phases = %+v", rep.Phases)
	}

	assertStatuses(t, sink.forLine(1), StatusQueued, StatusWorking, StatusWorking, StatusDone)
	assertStatuses(t, sink.forLine(2), StatusQueued, StatusWorking, StatusWorking, StatusError)
	assertStatuses(t, sink.forLine(3), StatusQueued, StatusWorking, StatusError)
	if evs := sink.forLine(3); evs[2].Stage != StageParse {
		t.Fatalf("parse failure reported at stage %q", evs[2].Stage)
	}
}

func assertStatuses(t *testing.T, events []Event, want ...Status) {
	t.Helper()
	if len(events) != len(want) {
		t.Fatalf("got %d events %+v, want %d", len(events), events, len(want))
	}
	for i, st := range want {
		if events[i].Status != st {
			t.Fatalf("event %d status = %q, want %q", i, events[i].Status, st)
		}
	}
}

func TestRunManyLines(t *testing.T) {
	const n = 200
	lines := make([]Line, n)
	for i := range lines {
		lines[i] = Line{No: i + 1, Text: fmt.Sprintf("%d * %d", i, i+1)}
	}
	results, err := Run(context.Background(), lines, Options{Jobs: 8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, r := range results {
		want := bignum.FromInt64(int64(i) * int64(i+1))
		if r.Err != nil || r.Value != want {
			t.Fatalf("line %d = %+v, want %v", i+1, r, want)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), nil, Options{})
	if err != nil || len(results) != 0 {
		t.Fatalf("Run(nil) = %v, %v", results, err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines := []Line{{No: 1, Text: "1 + 1"}, {No: 2, Text: "2 + 2"}}
	results, err := Run(ctx, lines, Options{Jobs: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if len(results) != 2 || results[0].Source != "1 + 1" {
		t.Fatalf("results = %+v", results)
	}
	if ok, failed := Count(results); ok != 0 || failed != 0 {
		t.Fatalf("Count = %d, %d; cancelled lines should count as neither", ok, failed)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 8)
	lines := []Line{{No: 1, Text: "2 - 5"}}
	if _, err := Run(context.Background(), lines, Options{Sink: ChannelSink{Ch: ch}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	close(ch)
	var last Event
	count := 0
	for evt := range ch {
		last = evt
		count++
	}
	if count != 4 || last.Status != StatusDone {
		t.Fatalf("got %d events, last %+v", count, last)
	}

	ChannelSink{}.OnEvent(Event{}) // nil channel is ignored
	var f FuncSink
	f.OnEvent(Event{})
}
