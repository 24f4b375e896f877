// Package timing collects named elapsed-time samples and aggregates them
// into a hierarchical summary. Names are dot-delimited ("frame.update.corr");
// the reporting side groups samples into a tree keyed by path segment.
package timing

import (
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

type bucket struct {
	mu   sync.Mutex
	list []time.Duration
}

// Recorder is an append-only store mapping a dotted name to the ordered
// sequence of durations recorded under it. Safe for concurrent writers.
type Recorder struct {
	mu    sync.RWMutex
	data  map[string]*bucket
	clock Clock
}

func New() *Recorder {
	return &Recorder{data: make(map[string]*bucket), clock: WallClock{}}
}

var std = New()

// Default returns the process-wide recorder used by the package-level
// Begin/BeginIf/Summary helpers. It lives for the life of the process and
// starts empty; Reset clears it between reporting rounds.
func Default() *Recorder { return std }

// SetClock replaces the recorder's time source. Intended for tests and for
// callers with an asynchronous measurement source.
func (r *Recorder) SetClock(c Clock) {
	r.mu.Lock()
	r.clock = c
	r.mu.Unlock()
}

func (r *Recorder) measure() Measurement {
	r.mu.RLock()
	c := r.clock
	r.mu.RUnlock()
	return c.Measure()
}

// Add appends one sample under name, creating the sample list on first use.
func (r *Recorder) Add(name string, d time.Duration) {
	r.mu.RLock()
	b, ok := r.data[name]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		if b = r.data[name]; b == nil {
			b = &bucket{}
			r.data[name] = b
		}
		r.mu.Unlock()
	}
	b.mu.Lock()
	b.list = append(b.list, d)
	b.mu.Unlock()
}

// Start returns a closure that records the elapsed time since the call to
// Start when invoked.
func (r *Recorder) Start(name string) func() {
	start := time.Now()
	return func() { r.Add(name, time.Since(start)) }
}

// Len reports the number of samples recorded under name.
func (r *Recorder) Len(name string) int {
	r.mu.RLock()
	b, ok := r.data[name]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.list)
}

// Names returns the recorded names in sorted order.
func (r *Recorder) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.data))
	for name := range r.data {
		out = append(out, name)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

// Samples returns a deep copy of the recorder state. The copy is detached:
// later Adds do not show up in it, and mutating it does not touch the
// recorder.
func (r *Recorder) Samples() map[string][]time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]time.Duration, len(r.data))
	for name, b := range r.data {
		b.mu.Lock()
		s := make([]time.Duration, len(b.list))
		copy(s, b.list)
		b.mu.Unlock()
		out[name] = s
	}
	return out
}

// Reset drops all recorded samples.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.data = make(map[string]*bucket)
	r.mu.Unlock()
}
