package traced

import (
	"fmt"
	"io"
	"os"
)

// Tracer builds Values and writes one line per lifetime event to its output.
type Tracer struct {
	out    io.Writer // trace lines go here
	sink   Sink      // optional observer, may be nil
	nextID int       // ids are per tracer so repeated runs print the same thing
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithSink reports every construction and destruction to s as well.
func WithSink(s Sink) Option { return func(t *Tracer) { t.sink = s } }

// NewTracer creates a tracer writing to out (stdout when out is nil).
func NewTracer(out io.Writer, opts ...Option) *Tracer {
	if out == nil {
		out = os.Stdout
	}
	t := &Tracer{out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Value is an immutable int that announces its own construction and destruction.
type Value struct {
	value  int
	id     int
	tracer *Tracer
	dead   bool
}

// Default constructs a Value holding 0.
func (t *Tracer) Default() *Value {
	v := t.construct(0)
	fmt.Fprintf(t.out, "traced.Default(): value_ = %d\n", v.value)
	t.emit(EventDefault, v)
	return v
}

// Convert constructs a Value holding n.
func (t *Tracer) Convert(n int) *Value {
	v := t.construct(n)
	fmt.Fprintf(t.out, "traced.Convert(int): value_ = %d\n", v.value)
	t.emit(EventConvert, v)
	return v
}

// Array constructs n Values in index order. The first len(inits) elements are
// converted from inits, the remaining ones are default constructed.
func (t *Tracer) Array(n int, inits ...int) []*Value {
	if len(inits) > n {
		panic(fmt.Sprintf("traced: %d initializers for an array of %d", len(inits), n))
	}
	arr := make([]*Value, n)
	for i := range arr {
		if i < len(inits) {
			arr[i] = t.Convert(inits[i])
			continue
		}
		arr[i] = t.Default()
	}
	return arr
}

func (t *Tracer) construct(n int) *Value {
	t.nextID++
	return &Value{value: n, id: t.nextID, tracer: t}
}

func (t *Tracer) emit(kind EventKind, v *Value) {
	SafeRecord(t.sink, Event{Kind: kind, ID: v.id, Value: v.value})
}

// Value returns the stored int.
func (v *Value) Value() int { return v.value }

// Alive reports whether Destroy has not run yet.
func (v *Value) Alive() bool { return !v.dead }

// Destroy ends the lifetime of v. It must be called exactly once.
func (v *Value) Destroy() {
	if v.dead {
		panic(fmt.Sprintf("traced: value #%d destroyed twice", v.id))
	}
	v.dead = true
	fmt.Fprintf(v.tracer.out, "traced.Destroy(): value = %d\n", v.value)
	v.tracer.emit(EventDestroy, v)
}
