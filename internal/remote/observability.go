package remote

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single document store call.
type CallEvent struct {
	Op        string // "get" or "set"
	Key       string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about remote calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes remote call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] remote_call op=%s key=%s latency_ms=%d status=%s\n",
		ts, event.Op, event.Key, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
