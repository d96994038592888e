// Package rssprep implements register-saturation scheduling preparation: a
// compiler back-end pass that estimates, for each basic block and register
// class, how many simultaneously-live values a schedule can force and
// inserts extra dependency edges, chosen one at a time by a greedy
// heuristic, to bring that count within the target's register budget. It
// stops early when no candidate edge would lower the count.
//
// The pass never reorders instructions itself. It only adds ordering
// constraints (package ir's dependency edges) that a later list scheduler
// must respect, limiting how many values of a class a schedule consistent
// with the resulting graph can keep live at once.
//
// Subpackages:
//
//	ir/     — the back-end IR graph: nodes, data edges, pass-inserted
//	          dependency edges, per-block synthetic Source/Sink
//	arch/   — the architecture collaborator: register classes, per-value
//	          class assignment, ignored/reserved register bitsets
//	height/ — per-block node height (longest path to Sink), recomputed
//	          after every inserted dependency edge
//	vcg/    — debug graph dumps in VCG format, for visual inspection of the
//	          potential-killer graph, kill-set cover, and disjoint value DAG
//	rss/    — the pass itself: rss.Prepare is the single entry point
package rssprep
