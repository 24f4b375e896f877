package timing

import (
	"strings"
	"testing"
	"time"
)

func TestSummaryScenario(t *testing.T) {
	r := New()
	r.Add("stage1.sub", 10*time.Millisecond)
	r.Add("stage1.sub", 20*time.Millisecond)
	r.Add("stage1", 5*time.Millisecond)

	want := "=== timing summary ===\n" +
		"    stage1         \ttotal 5 ms   1 runs   avg 5.00 ms\n" +
		"        sub            \ttotal 30 ms   2 runs   avg 15.00 ms\n"

	if got := r.Summary(); got != want {
		t.Errorf("Summary mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestSummaryEmptyRecorder(t *testing.T) {
	r := New()

	want := "=== timing summary ===\n"
	if got := r.Summary(); got != want {
		t.Errorf("Summary mismatch: got %q, want %q", got, want)
	}
}

func TestSummaryIdempotent(t *testing.T) {
	r := New()
	r.Add("a.b", 2*time.Millisecond)
	r.Add("a.c", 4*time.Millisecond)
	r.Add("d", 1*time.Millisecond)

	first := r.Summary()
	second := r.Summary()
	if first != second {
		t.Errorf("Summary not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestSummaryNamespaceNodePrinted(t *testing.T) {
	r := New()
	r.Add("outer.inner", 6*time.Millisecond)

	got := r.Summary()
	if !strings.Contains(got, "outer          \ttotal 0 ms   0 runs   avg 0.00 ms") {
		t.Errorf("namespace node missing or misformatted:\n%s", got)
	}
	if !strings.Contains(got, "        inner          \ttotal 6 ms   1 runs   avg 6.00 ms") {
		t.Errorf("leaf node missing or misformatted:\n%s", got)
	}
}

func TestSummaryDeterministicSiblingOrder(t *testing.T) {
	// Whatever order the samples arrive in, snapshot names are sorted before
	// tree insertion, so siblings always report in the same order.
	build := func(names []string) string {
		r := New()
		for _, n := range names {
			r.Add(n, time.Millisecond)
		}
		return r.Summary()
	}

	a := build([]string{"p.b", "p.a", "q"})
	b := build([]string{"q", "p.a", "p.b"})
	if a != b {
		t.Errorf("sibling order depends on arrival order:\n%s\nvs:\n%s", a, b)
	}

	lines := strings.Split(strings.TrimRight(a, "\n"), "\n")
	want := []string{"p", "a", "b", "q"}
	if len(lines) != len(want)+1 {
		t.Fatalf("line count mismatch: got %d, want %d", len(lines), len(want)+1)
	}
	for i, name := range want {
		if !strings.Contains(lines[i+1], name) {
			t.Errorf("line %d should report %q: %q", i+1, name, lines[i+1])
		}
	}
}

func TestSummaryTotalIsSumOfRecorded(t *testing.T) {
	r := New()
	durations := []time.Duration{
		3 * time.Millisecond, 5 * time.Millisecond, 13 * time.Millisecond,
	}
	for _, d := range durations {
		r.Add("solo", d)
	}

	got := r.Summary()
	want := "    solo           \ttotal 21 ms   3 runs   avg 7.00 ms\n"
	if !strings.Contains(got, want) {
		t.Errorf("Summary missing aggregate line %q:\n%s", want, got)
	}
}
