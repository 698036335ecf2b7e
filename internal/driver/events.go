package driver

import "time"

// Status captures progress of one signature list.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being parsed.
	StatusWorking Status = "working"
	// StatusDone indicates every line parsed.
	StatusDone Status = "done"
	// StatusError indicates the file could not be read or some line failed.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Status  Status
	Lines   int // parsed lines; set on done/error
	Failed  int // lines that produced a diagnostic
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must be safe for
// concurrent use: workers report from their own goroutines.
type Sink interface {
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

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) {
	if f != nil {
		f(evt)
	}
}

func notify(s Sink, evt Event) {
	if s != nil {
		s.OnEvent(evt)
	}
}
