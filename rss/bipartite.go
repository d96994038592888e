package rss

import (
	"sort"

	"github.com/regsaturation/rssprep/ir"
)

// decomposeBipartite partitions EPK (the edges u -> v for v in pkillers(u))
// into connected bipartite components, each covering a disjoint set of
// parents. A value with no potential killer starts no component, so every
// parent of a component has at least one kill edge into it.
func decomposeBipartite(arena map[ir.NodeID]*rssNode, candidates []ir.NodeID) []*CbcComponent {
	epk := make([]KillEdge, 0)
	for _, u := range candidates {
		for _, v := range arena[u].pkillers {
			epk = append(epk, KillEdge{Src: u, Tgt: v})
		}
	}

	visited := make(map[ir.NodeID]bool, len(candidates))
	var comps []*CbcComponent
	nr := 0

	for _, u0 := range candidates {
		if visited[u0] || len(arena[u0].pkillers) == 0 {
			continue
		}

		parents := map[ir.NodeID]bool{u0: true}
		children := map[ir.NodeID]bool{}
		for _, v := range arena[u0].pkillers {
			children[v] = true
		}

		for changed := true; changed; {
			changed = false
			for p := range parents {
				for _, v := range arena[p].pkillers {
					if !children[v] {
						children[v] = true
						changed = true
					}
				}
			}
			for c := range children {
				for _, p := range arena[c].killValues {
					if !parents[p] {
						parents[p] = true
						changed = true
					}
				}
			}
		}

		// Bipartite property: a node that ended up in both sets is removed
		// from children (it is already accounted for as a parent).
		for n := range parents {
			delete(children, n)
		}
		for p := range parents {
			visited[p] = true
		}

		comp := &CbcComponent{Nr: nr}
		nr++
		for p := range parents {
			comp.Parents = insertSorted(comp.Parents, p)
		}
		for c := range children {
			comp.Children = insertSorted(comp.Children, c)
		}

		remaining := epk[:0:0]
		for _, e := range epk {
			if parents[e.Src] && children[e.Tgt] {
				comp.KillEdges = append(comp.KillEdges, e)
			} else {
				remaining = append(remaining, e)
			}
		}
		epk = remaining

		sort.Slice(comp.KillEdges, func(i, j int) bool {
			if comp.KillEdges[i].Src != comp.KillEdges[j].Src {
				return comp.KillEdges[i].Src < comp.KillEdges[j].Src
			}

			return comp.KillEdges[i].Tgt < comp.KillEdges[j].Tgt
		})

		if len(comp.Parents) > 0 {
			comps = append(comps, comp)
		}
	}

	return comps
}
