package chomsky

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// directedGraph is an unweighted directed graph over string-keyed vertices,
// used by the UNIT pass to compute the full transitive unit-closure (spec
// §4.2, §9 — the teacher's single-source-per-target shortcut is replaced
// here with the actual closure relation). Adapted down from the teacher's
// DirectedGraph: the probability-weighted strongly-connected-component
// collapse (Floyd/TopologicalSort/Transpose/StrongComponents) was PCFG
// machinery for merging probability mass around unit-rule cycles, which this
// non-probabilistic recognizer has no use for — a cycle in the unit-rule
// graph is harmless here, a visited set just stops the walk at it.
//
// Reachable sets are held in emirpasic/gods treesets (the set type
// npillmayer-gorgo/lr/tables.go uses for its own closure computations) so
// that iteration order is deterministic regardless of Go's randomized map
// order.
type directedGraph struct {
	arcs map[string]*treeset.Set
}

// newDirectedGraph creates an empty graph.
func newDirectedGraph() *directedGraph {
	return &directedGraph{arcs: map[string]*treeset.Set{}}
}

// add inserts a directed edge s -> t.
func (g *directedGraph) add(s, t string) {
	if g.arcs[s] == nil {
		g.arcs[s] = treeset.NewWith(utils.StringComparator)
	}
	g.arcs[s].Add(t)
}

// reachable returns every vertex reachable from s by following edges,
// including s itself (the unit-closure relation ⇒* is reflexive).
func (g *directedGraph) reachable(s string) *treeset.Set {
	visited := treeset.NewWith(utils.StringComparator)
	visited.Add(s)
	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		succ, ok := g.arcs[v]
		if !ok {
			continue
		}
		for _, t := range succ.Values() {
			tv := t.(string)
			if !visited.Contains(tv) {
				visited.Add(tv)
				queue = append(queue, tv)
			}
		}
	}
	return visited
}
