package timing

import (
	"fmt"
	"strings"
	"time"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/slices"
)

// node is one path segment of the aggregated hierarchy. self holds the
// samples whose full dotted name terminates exactly at this node; names that
// continue deeper land on a descendant. children keeps insertion order so
// reports are deterministic.
type node struct {
	self     []time.Duration
	children map[string]*node
	order    []string
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// child returns the child for seg, inserting it on first use.
func (n *node) child(seg string) *node {
	c, ok := n.children[seg]
	if !ok {
		c = newNode()
		n.children[seg] = c
		n.order = append(n.order, seg)
	}
	return c
}

func (n *node) extend(parts []string, samples []time.Duration) {
	if len(parts) == 0 {
		n.self = append(n.self, samples...)
		return
	}
	n.child(parts[0]).extend(parts[1:], samples)
}

func (n *node) stats() (total time.Duration, count int, avg float64) {
	for _, d := range n.self {
		total += d
	}
	count = len(n.self)
	if count > 0 {
		avg = millis(total) / float64(count)
	}
	return total, count, avg
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// tree rebuilds the aggregation tree from a snapshot of the recorder state.
// Names are visited in sorted order, so sibling order is deterministic no
// matter how the samples arrived. An empty name attaches to the root itself;
// an empty segment ("a..b") is a literal zero-length path component.
func (r *Recorder) tree() *node {
	samples := r.Samples()
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	slices.Sort(names)

	root := newNode()
	for _, name := range names {
		if name == "" {
			root.extend(nil, samples[name])
			continue
		}
		root.extend(strings.Split(name, "."), samples[name])
	}
	return root
}

// Tree renders the aggregated hierarchy with treeprint, one branch per path
// segment, labelled with the same figures as the summary.
func (r *Recorder) Tree() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue("timing summary")
	addBranches(tree, r.tree())
	return tree
}

func addBranches(tree treeprint.Tree, n *node) {
	for _, seg := range n.order {
		child := n.children[seg]
		total, count, avg := child.stats()
		branch := tree.AddBranch(fmt.Sprintf("%s  total %.0f ms   %d runs   avg %.2f ms",
			seg, millis(total), count, avg))
		addBranches(branch, child)
	}
}
