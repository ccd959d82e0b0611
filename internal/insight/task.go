package insight

import (
	"context"
	"sync"
)

// State is the lifecycle of an insight request slot.
type State int

const (
	// StateIdle means nothing has been requested yet.
	StateIdle State = iota
	// StatePending means at least one request is outstanding.
	StatePending
	// StateResolved means every request has finished.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	}
	return "unknown"
}

// Ticket identifies one request started on a Task.
type Ticket uint64

// Snapshot is a point-in-time view of a Task.
type Snapshot struct {
	State       State
	Text        string
	Outstanding int
}

// Task tracks the requests behind one insight display. Requests may overlap
// and none is cancelled; the last one to resolve supplies the text.
type Task struct {
	mu       sync.Mutex
	next     Ticket
	pending  map[Ticket]struct{}
	text     string
	resolved bool
}

// NewTask creates an idle task.
func NewTask() *Task {
	return &Task{pending: make(map[Ticket]struct{})}
}

// Begin starts a request and returns its ticket.
func (t *Task) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	t.pending[t.next] = struct{}{}
	return t.next
}

// Resolve records the text for ticket. Unknown or already resolved tickets
// are ignored and Resolve returns false.
func (t *Task) Resolve(ticket Ticket, text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.pending[ticket]; !ok {
		return false
	}
	delete(t.pending, ticket)
	t.text = text
	t.resolved = true
	return true
}

// Snapshot returns the current state and text.
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{Text: t.text, Outstanding: len(t.pending)}
	switch {
	case s.Outstanding > 0:
		s.State = StatePending
	case t.resolved:
		s.State = StateResolved
	default:
		s.State = StateIdle
	}
	return s
}

// Run starts fn on a new goroutine under a fresh ticket. The returned channel
// receives the text once it has been recorded and is then closed.
func (t *Task) Run(ctx context.Context, fn func(context.Context) string) <-chan string {
	ticket := t.Begin()
	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		text := fn(ctx)
		t.Resolve(ticket, text)
		ch <- text
	}()
	return ch
}
