package traced

import "sync"

// EventKind tells which lifetime transition an Event describes.
type EventKind string

const (
	EventDefault EventKind = "default"
	EventConvert EventKind = "convert"
	EventDestroy EventKind = "destroy"
)

// Event is one construction or destruction.
type Event struct {
	Kind  EventKind
	ID    int // sequential per Tracer, starting at 1
	Value int
}

// Constructed reports whether e is either kind of construction.
func (e Event) Constructed() bool { return e.Kind == EventDefault || e.Kind == EventConvert }

// Sink observes lifetime events. Record must not panic and must not block.
type Sink interface {
	Record(event Event)
}

// SafeRecord forwards event to s, ignoring a nil sink and swallowing panics
// so that an observer can never change what the program prints.
func SafeRecord(s Sink, event Event) {
	if s == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.Record(event)
}

// Recorder keeps every event in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Record(event Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Snapshot returns a copy of the events recorded so far.
func (r *Recorder) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Multi fans one event out to several sinks, in order.
type Multi []Sink

func (m Multi) Record(event Event) {
	for _, s := range m {
		SafeRecord(s, event)
	}
}
