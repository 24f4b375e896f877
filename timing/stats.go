package timing

import (
	"sort"
	"time"
)

// Row is the flat per-name statistics view, one row per recorded name.
type Row struct {
	Name     string
	Count    int
	Total    time.Duration
	Mean     time.Duration
	P50, P95 time.Duration
	Max      time.Duration
}

// Snapshot computes per-name statistics over the current recorder state,
// sorted by total time descending. Names with no samples are omitted.
func (r *Recorder) Snapshot() []Row {
	samples := r.Samples()

	out := make([]Row, 0, len(samples))
	for name, s := range samples {
		if len(s) == 0 {
			continue
		}
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })

		var total time.Duration
		for _, d := range s {
			total += d
		}
		p95Index := int(float64(len(s))*0.95) - 1
		if p95Index < 0 {
			p95Index = 0
		}
		out = append(out, Row{
			Name:  name,
			Count: len(s),
			Total: total,
			Mean:  time.Duration(int64(total) / int64(len(s))),
			P50:   s[len(s)/2],
			P95:   s[p95Index],
			Max:   s[len(s)-1],
		})
	}
	// Heaviest names first
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
