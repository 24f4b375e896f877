package timing

import "time"

// Clock produces elapsed-time measurements. The default WallClock reads the
// monotonic wall clock; callers timing work that completes asynchronously
// (device queues, background flushes) can supply a Clock whose measurements
// only resolve once the work has actually finished.
type Clock interface {
	Measure() Measurement
}

// Measurement is one in-flight elapsed-time reading. Stop blocks until the
// measurement is final and returns the elapsed duration; it must be called
// exactly once.
type Measurement interface {
	Stop() time.Duration
}

type WallClock struct{}

type wallMeasurement struct{ start time.Time }

func (WallClock) Measure() Measurement { return wallMeasurement{start: time.Now()} }

func (m wallMeasurement) Stop() time.Duration { return time.Since(m.start) }

// Scope is one timed region, bounded by Begin and End. The zero-overhead
// disabled form carries no recorder and no measurement, so End never touches
// the clock.
type Scope struct {
	name string
	rec  *Recorder
	m    Measurement
	done bool
}

// Begin opens a timed scope under name on r.
func (r *Recorder) Begin(name string) *Scope { return r.BeginIf(name, true) }

// BeginIf opens a timed scope if enabled is true. With enabled false the
// returned scope records nothing and skips all timing machinery.
func (r *Recorder) BeginIf(name string, enabled bool) *Scope {
	if !enabled {
		return &Scope{}
	}
	return &Scope{name: name, rec: r, m: r.measure()}
}

// End closes the scope: it waits for the measurement to resolve and appends
// the elapsed duration under the scope's name. End on a disabled scope is a
// no-op. Ending the same scope twice is a contract violation and panics.
func (s *Scope) End() {
	if s.rec == nil {
		return
	}
	if s.done {
		panic("timing: scope " + s.name + " ended twice")
	}
	s.done = true
	s.rec.Add(s.name, s.m.Stop())
}

// Begin opens a timed scope on the default recorder.
func Begin(name string) *Scope { return std.Begin(name) }

// BeginIf opens a conditionally enabled scope on the default recorder.
func BeginIf(name string, enabled bool) *Scope { return std.BeginIf(name, enabled) }
