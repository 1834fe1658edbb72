package metrics

import (
	"fmt"
	"io"
	"sort"

	"ctordtor/pkg/traced"
)

// Tally counts lifetime events. It implements traced.Sink.
type Tally struct {
	Defaults   int
	Converts   int
	Destroys   int
	live       map[int]int // instance id -> value, for everything not yet destroyed
	overkilled []int       // ids destroyed without a matching construction
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{live: make(map[int]int)}
}

// Record adds one event to the tally.
func (t *Tally) Record(e traced.Event) {
	switch e.Kind {
	case traced.EventDefault:
		t.Defaults++
		t.live[e.ID] = e.Value
	case traced.EventConvert:
		t.Converts++
		t.live[e.ID] = e.Value
	case traced.EventDestroy:
		t.Destroys++
		if _, ok := t.live[e.ID]; !ok {
			t.overkilled = append(t.overkilled, e.ID)
			return
		}
		delete(t.live, e.ID)
	}
}

// Constructed returns the number of constructions of either kind.
func (t *Tally) Constructed() int { return t.Defaults + t.Converts }

// Live returns the ids of instances that were built but not destroyed, sorted.
func (t *Tally) Live() []int {
	ids := make([]int, 0, len(t.live))
	for id := range t.live {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Balanced returns an error unless every constructed instance was destroyed
// exactly once.
func (t *Tally) Balanced() error {
	if len(t.overkilled) > 0 {
		return fmt.Errorf("destroyed without construction: instances %v", t.overkilled)
	}
	if live := t.Live(); len(live) > 0 {
		return fmt.Errorf("%d constructed, %d destroyed, still alive: instances %v",
			t.Constructed(), t.Destroys, live)
	}
	return nil
}

// PrintStats writes a short summary of the tally.
func (t *Tally) PrintStats(w io.Writer, label string) {
	fmt.Fprintf(w, "\n=== %s ===\n", label)
	fmt.Fprintf(w, "Default ctors:    %d\n", t.Defaults)
	fmt.Fprintf(w, "Converting ctors: %d\n", t.Converts)
	fmt.Fprintf(w, "Dtors:            %d\n", t.Destroys)
	fmt.Fprintf(w, "Alive:            %d\n", len(t.live))
}
