package driver

import "time"

// Stage describes where a file is in its per-file pipeline.
type Stage string

const (
	// StageLoad is reading the file into the FileSet.
	StageLoad Stage = "load"
	// StageCheck is running the selected checks.
	StageCheck Stage = "check"
	// StageWrite is writing a repaired file back.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file needed nothing.
	StatusDone Status = "done"
	// StatusChanged indicates the file needed (or got) a change.
	StatusChanged Status = "changed"
	// StatusError indicates processing failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the overall run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
