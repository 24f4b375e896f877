package timing

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const summaryHeader = "=== timing summary ==="

// WriteSummary writes the hierarchical timing summary to w. Each node prints
// its own samples only (descendants report theirs on their own lines), at
// four spaces of indent per level. Nodes with no samples of their own still
// print, with total 0 and avg 0.00. Running it twice without new samples
// produces identical output.
func (r *Recorder) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintln(w, summaryHeader); err != nil {
		return err
	}
	return writeNode(w, r.tree(), 0)
}

func writeNode(w io.Writer, n *node, depth int) error {
	for _, seg := range n.order {
		child := n.children[seg]
		total, count, avg := child.stats()
		pad := strings.Repeat("    ", depth+1)
		_, err := fmt.Fprintf(w, "%s%-15s\ttotal %.0f ms   %d runs   avg %.2f ms\n",
			pad, seg, millis(total), count, avg)
		if err != nil {
			return err
		}
		if err := writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns the timing summary as a string.
func (r *Recorder) Summary() string {
	var sb strings.Builder
	r.WriteSummary(&sb)
	return sb.String()
}

// PrintSummary writes the summary to stdout.
func (r *Recorder) PrintSummary() {
	r.WriteSummary(os.Stdout)
}

// Summary returns the default recorder's summary.
func Summary() string { return std.Summary() }

// PrintSummary writes the default recorder's summary to stdout.
func PrintSummary() { std.PrintSummary() }
