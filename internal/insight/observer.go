package insight

import (
	"time"

	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/model"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Domain  model.Domain
	Model   string
	CallID  string
	Latency time.Duration
	Err     error
}

// Success reports whether the call returned usable text.
func (e CallEvent) Success() bool {
	return e.Err == nil
}

// Observer receives one event per generation call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to the structured logger. Failures are
// logged at error level, successes at debug level.
type LogObserver struct{}

func (LogObserver) OnCallComplete(event CallEvent) {
	args := []any{
		logging.KeyDomain, event.Domain,
		logging.KeyModel, event.Model,
		logging.KeyDuration, event.Latency.Milliseconds(),
	}
	if event.CallID != "" {
		args = append(args, logging.KeyCallID, event.CallID)
	}

	if event.Err != nil {
		logging.Error("insight request failed", append(args, logging.KeyError, event.Err)...)
		return
	}
	logging.DebugLog("insight request complete", args...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
