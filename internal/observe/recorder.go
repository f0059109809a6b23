package observe

import (
	"context"
	"sync"
)

// Event is one hook invocation captured by Recorder.
type Event struct {
	Hook string
	Op   string
	ID   string
	Err  error
}

// Recorder keeps every hook call; used by tests across the domain packages.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) BeforeValidate(_ context.Context, op string, _ ...any) {
	r.add(Event{Hook: "before", Op: op})
}

func (r *Recorder) AfterMutation(_ context.Context, op string, id string, _ ...any) {
	r.add(Event{Hook: "after", Op: op, ID: id})
}

func (r *Recorder) OnError(_ context.Context, op string, err error) {
	r.add(Event{Hook: "error", Op: op, Err: err})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Hooks returns "hook:op" pairs in call order.
func (r *Recorder) Hooks() []string {
	out := []string{}
	for _, e := range r.Events() {
		out = append(out, e.Hook+":"+e.Op)
	}
	return out
}
