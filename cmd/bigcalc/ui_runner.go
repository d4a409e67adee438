package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bigcalc/internal/batch"
	"bigcalc/internal/ui"
)

type batchOutcome struct {
	results []batch.Result
	err     error
}

// runBatchWithUI evaluates lines while a progress view renders the events.
// Quitting the view cancels the evaluation.
func runBatchWithUI(ctx context.Context, title string, lines []batch.Line, opts batch.Options, stdinConsumed bool) ([]batch.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Sink = batch.ChannelSink{Ch: events}
		res, err := batch.Run(ctx, lines, runOpts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	programOpts := []tea.ProgramOption{tea.WithOutput(os.Stdout)}
	if stdinConsumed {
		programOpts = append(programOpts, tea.WithInput(nil))
	}
	model := ui.NewProgressModel(title, lines, events)
	program := tea.NewProgram(model, programOpts...)
	_, uiErr := program.Run()

	// The view may quit early; stop the run and keep the sink unblocked.
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
