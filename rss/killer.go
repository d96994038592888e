package rss

import (
	"sort"

	"github.com/regsaturation/rssprep/ir"
)

// selectKillers runs a greedy minimum killing-set-cover heuristic over a
// single CbcComponent, assigning arena[u].killer for every u in
// comp.Parents.
func selectKillers(arena map[ir.NodeID]*rssNode, comp *CbcComponent, sink ir.NodeID) {
	byTarget := make(map[ir.NodeID][]ir.NodeID, len(comp.Children))
	for _, e := range comp.KillEdges {
		byTarget[e.Tgt] = insertSorted(byTarget[e.Tgt], e.Src)
	}

	x := make(map[ir.NodeID]bool, len(comp.Parents))
	for _, p := range comp.Parents {
		x[p] = true
	}
	y := make(map[ir.NodeID]bool)

	type sksEntry struct {
		t             ir.NodeID
		cost          float64
		parentsKilled []ir.NodeID
	}
	var sks []sksEntry

	for len(x) > 0 {
		var best ir.NodeID
		bestCost := -1.0
		found := false

		for _, t := range comp.Children {
			count := 0
			for _, p := range byTarget[t] {
				if x[p] {
					count++
				}
			}
			if count == 0 {
				continue
			}
			denom := len(arena[t].descendants) + len(y)
			if denom < 1 {
				denom = 1
			}
			cost := float64(count) / float64(denom)
			if !found || cost > bestCost {
				best, bestCost, found = t, cost, true
			}
		}
		if !found {
			break // no remaining child kills a parent still in X; nothing more to cover
		}

		var killed []ir.NodeID
		for _, p := range byTarget[best] {
			if x[p] {
				killed = append(killed, p)
				delete(x, p)
			}
		}
		sks = append(sks, sksEntry{t: best, cost: bestCost, parentsKilled: killed})
		for _, d := range arena[best].descendants {
			y[d] = true
		}
	}

	sort.SliceStable(sks, func(i, j int) bool { return sks[i].cost < sks[j].cost })

	// Process in descending cost (the reverse of the ascending sort above).
	// A parent's killer is set only while it is still Sink, so the first
	// assignment stands; each parent appears in exactly one entry's
	// parentsKilled, so no assignment competes with another.
	for i := len(sks) - 1; i >= 0; i-- {
		t := sks[i].t
		for _, u := range sks[i].parentsKilled {
			if arena[u].killer == sink {
				arena[u].killer = t
			}
		}
	}
}
