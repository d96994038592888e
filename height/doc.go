// Package height recomputes longest-path-to-sink distances within a block
// and answers in-block reachability queries, both of which the
// serialization heuristic in the rss package needs to avoid inflating the
// critical path or creating a cycle.
//
// Topological ordering is delegated to gonum.org/v1/gonum/graph/topo, built
// over a gonum graph/simple.DirectedGraph of the block's data and dependency
// edges; height.Recompute reports an error rather than guessing if the
// block is not acyclic. Reachability is a memoized forward search per
// source, cached as a sorted slice for O(log n) membership testing.
package height
