// Package rss implements Register-Saturation Scheduling Preparation: the
// per-block, per-register-class analysis that inserts artificial
// dependency edges into a block's data-flow graph so that no subsequent
// list scheduler can produce a schedule whose simultaneously-live value
// count for a class exceeds the number of physical registers available to
// it.
//
// The pipeline follows Touati's register-saturation theory: potential-killer
// computation, connected bipartite decomposition of the kill relation, a
// greedy minimum killing-set-cover heuristic producing a killing function
// k*, a Disjoint Value DAG built from k*, a minimum chain partition via
// maximum-cardinality bipartite matching (Dilworth's theorem), and an
// iterative serialization heuristic that inserts edges while the resulting
// maximum antichain exceeds the register budget.
//
// Prepare is the single entry point; everything else in this package is an
// internal collaborator reachable only through it.
package rss
