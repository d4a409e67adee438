package batch

import "time"

// Stage describes a phase of evaluating one line.
type Stage string

const (
	// StageParse is the parsing stage.
	StageParse Stage = "parse"
	// StageEval is the evaluation stage.
	StageEval Stage = "eval"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the line is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the line is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the line evaluated successfully.
	StatusDone Status = "done"
	// StatusError indicates the line failed to parse or evaluate.
	StatusError Status = "error"
)

// Event reports progress for one input line.
type Event struct {
	Line    int
	Source  string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent may be called from several
// goroutines at once.
type ProgressSink interface {
	OnEvent(Event)
}
