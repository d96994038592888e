package rss

import (
	"github.com/regsaturation/rssprep/height"
	"github.com/regsaturation/rssprep/ir"
)

// computeDvgPkillers computes the DVG analogue of pkillers: v is a pkiller
// of n within the DVG iff v is a DVG user of n and no other DVG user of n
// lists v among its own DVG descendants. Clears and repopulates
// arena[*].dvgPkillers for every DVG node, since it must be recomputed
// after each edge insertion.
func computeDvgPkillers(d *Dvg, arena map[ir.NodeID]*rssNode) {
	for _, n := range d.Nodes {
		arena[n].dvgPkillers = nil
	}
	for _, n := range d.Nodes {
		users := d.Users[n]
		for _, v := range users {
			ok := true
			for _, w := range users {
				if w == v {
					continue
				}
				if d.IsDescendant(w, v) {
					ok = false

					break
				}
			}
			if ok {
				arena[n].dvgPkillers = insertSorted(arena[n].dvgPkillers, v)
			}
		}
	}
}

func unionDescendants(d *Dvg, nodes []ir.NodeID) []ir.NodeID {
	out := []ir.NodeID{}
	for _, n := range nodes {
		out = sortedUnion(out, d.Descendants(n))
	}

	return out
}

// serializeResult is what the serialization heuristic hands back to the
// driver: the final antichain (≤ R, or the best the heuristic could do) and
// how many edges it inserted, for rss.BlockReport enrichment.
type serializeResult struct {
	antichain        []ir.NodeID
	insertedByTarget map[ir.NodeID]int
}

// runSerializationHeuristic runs the register-pressure serialization
// heuristic: while the antichain (excluding Sink) exceeds the register
// budget R, find the admissible
// candidate edge minimizing R-Ω₁ — preferring one with Ω₂=0 when any
// exists — insert it, recompute heights, and recompute the antichain.
// Terminates early if no candidate with Ω₁>0 is ever found.
func runSerializationHeuristic(
	g *ir.Graph,
	h *height.Heights,
	block ir.BlockID,
	arena map[ir.NodeID]*rssNode,
	d *Dvg,
	antichain []ir.NodeID,
	sink ir.NodeID,
	r int,
) (serializeResult, error) {
	live := withoutSink(antichain, sink)
	insertedByTarget := make(map[ir.NodeID]int)

	for len(live) > r {
		computeDvgPkillers(d, arena)
		idx := newBlockIndex(live)
		liveBits := idx.bitsetOf(live)

		var best, bestZero *Serialization
		var bestKey, bestZeroKey int
		anyPositive := false

		for _, u := range live {
			for _, v := range live {
				if u == v {
					continue
				}
				uPkillsIncludesV := containsSorted(arena[u].dvgPkillers, v)

				for _, vv := range arena[u].dvgPkillers {
					var addEdge bool
					if uPkillsIncludesV {
						addEdge = vv != v
					} else {
						addEdge = !h.Reachable(v, vv)
					}
					if !addEdge {
						continue
					}

					mu1 := int(idx.bitsetOf(d.Descendants(v)).IntersectionCardinality(liveBits))
					mu2 := 0
					if uPkillsIncludesV {
						union := unionDescendants(d, arena[u].dvgPkillers)
						mu2 = len(sortedDifference(union, d.Descendants(v)))
					}
					invariant(mu1 >= mu2, ErrOmegaInvariantViolated)

					omega1 := mu1 - mu2
					if omega1 > 0 {
						anyPositive = true
					}

					critical := h.Height(v) + h.Max() - h.Height(vv) + 1
					omega2 := critical - h.Max()
					if omega2 < 0 {
						omega2 = 0
					}

					cand := &Serialization{Src: vv, Tgt: v, Omega1: omega1, Omega2: omega2}
					key := r - omega1

					if best == nil || lessCandidate(key, cand, bestKey, best) {
						best, bestKey = cand, key
					}
					if omega2 == 0 {
						if bestZero == nil || lessCandidate(key, cand, bestZeroKey, bestZero) {
							bestZero, bestZeroKey = cand, key
						}
					}
				}
			}
		}

		if !anyPositive {
			break
		}

		chosen := best
		if bestZero != nil {
			chosen = bestZero
		}

		if err := g.AddDependencyEdge(chosen.Src, chosen.Tgt); err != nil {
			return serializeResult{antichain: live, insertedByTarget: insertedByTarget}, err
		}
		d.AddEdge(chosen.Src, chosen.Tgt)
		insertedByTarget[chosen.Tgt]++

		if err := h.Recompute(g, block); err != nil {
			return serializeResult{antichain: live, insertedByTarget: insertedByTarget}, err
		}

		live = withoutSink(computeAntichain(d, arena), sink)
	}

	return serializeResult{antichain: live, insertedByTarget: insertedByTarget}, nil
}

// lessCandidate implements a deterministic tie-break: candidates are
// compared lexicographically on (key, src, tgt), so that
// equal keys keep the first-found (lowest (src,tgt)) candidate regardless of
// map/slice iteration order.
func lessCandidate(key int, cand *Serialization, bestKey int, best *Serialization) bool {
	if key != bestKey {
		return key < bestKey
	}
	if cand.Src != best.Src {
		return cand.Src < best.Src
	}

	return cand.Tgt < best.Tgt
}

func withoutSink(nodes []ir.NodeID, sink ir.NodeID) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(nodes))
	for _, n := range nodes {
		if n != sink {
			out = append(out, n)
		}
	}

	return out
}
