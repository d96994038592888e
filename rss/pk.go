package rss

import "github.com/regsaturation/rssprep/ir"

// computePK computes potential killers: v is a potential killer of u iff
// descendants(v) ∩ consumers(u) ⊆ {v}. Every consumer v of u is tested;
// scheduling v would then necessarily kill u, since every path from u to one
// of its consumers ends at v or passes through it.
func computePK(arena map[ir.NodeID]*rssNode, candidates []ir.NodeID, sink ir.NodeID) {
	for _, u := range candidates {
		uinfo := arena[u]
		uinfo.killer = sink

		for _, v := range uinfo.consumers {
			vinfo, ok := arena[v]
			if !ok {
				continue
			}
			if isPotentialKiller(vinfo, uinfo) {
				uinfo.pkillers = insertSorted(uinfo.pkillers, v)
				vinfo.killValues = insertSorted(vinfo.killValues, u)
			}
		}
	}
}

// isPotentialKiller tests descendants(v) ∩ consumers(u) ⊆ {v}, iterating
// the shorter of the two sorted sets against the longer.
func isPotentialKiller(vinfo, uinfo *rssNode) bool {
	small, big := vinfo.descendants, uinfo.consumers
	if len(uinfo.consumers) < len(vinfo.descendants) {
		small, big = uinfo.consumers, vinfo.descendants
	}

	for _, d := range small {
		if d == vinfo.id {
			continue
		}
		if containsSorted(big, d) {
			return false
		}
	}

	return true
}
