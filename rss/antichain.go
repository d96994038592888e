package rss

import "github.com/regsaturation/rssprep/ir"

// bipartiteMatcher runs Kuhn's augmenting-path algorithm over the DVG's
// edges treated as a bipartite graph (each DVG node appears once on the
// left, once on the right; a DVG edge u->v becomes a left-u to right-v
// edge). Every edge has unit weight, so a maximum-cardinality matching is
// exactly the minimum chain partition Dilworth's theorem calls for.
type bipartiteMatcher struct {
	d       *Dvg
	matchR  map[ir.NodeID]ir.NodeID // right -> left
}

func (m *bipartiteMatcher) tryAugment(u ir.NodeID, visited map[ir.NodeID]bool) bool {
	for _, v := range m.d.Edges[u] {
		if visited[v] {
			continue
		}
		visited[v] = true
		cur, occupied := m.matchR[v]
		if !occupied || m.tryAugment(cur, visited) {
			m.matchR[v] = u

			return true
		}
	}

	return false
}

// maxBipartiteMatching returns matchL (left -> right) and matchR (right ->
// left) for the maximum-cardinality matching of the DVG's edge set.
func maxBipartiteMatching(d *Dvg) (matchL, matchR map[ir.NodeID]ir.NodeID) {
	m := &bipartiteMatcher{d: d, matchR: make(map[ir.NodeID]ir.NodeID)}
	for _, u := range d.Nodes {
		if len(d.Edges[u]) == 0 {
			continue
		}
		m.tryAugment(u, make(map[ir.NodeID]bool))
	}

	matchL = make(map[ir.NodeID]ir.NodeID, len(m.matchR))
	for v, u := range m.matchR {
		matchL[u] = v
	}

	return matchL, m.matchR
}

// buildChains extracts the minimum chain partition from a matching: every
// right-vertex with no matched left-vertex is a chain head; following
// matchL from a head yields the chain. Assigns arena[*].chain and
// arena[*].chainIndex for every DVG node.
func buildChains(d *Dvg, arena map[ir.NodeID]*rssNode, matchL, matchR map[ir.NodeID]ir.NodeID) []*Chain {
	var chains []*Chain
	for _, n := range d.Nodes {
		if _, matched := matchR[n]; matched {
			continue // n is reached via some left-vertex; not a head
		}
		c := &Chain{}
		for cur := n; ; {
			c.Nodes = append(c.Nodes, cur)
			nxt, ok := matchL[cur]
			if !ok {
				break
			}
			cur = nxt
		}
		chains = append(chains, c)
	}

	for _, c := range chains {
		for i, n := range c.Nodes {
			arena[n].chain = c
			arena[n].chainIndex = i
		}
	}

	return chains
}

// extractAntichain derives a maximum antichain from a minimum chain
// partition (Dilworth's theorem: the two have equal size). Seeded with
// every chain head, it repeatedly removes any value that has another value
// in the working set as a DVG descendant, replacing it with its chain
// predecessor (if any), until no such removal applies.
func extractAntichain(d *Dvg, arena map[ir.NodeID]*rssNode, chains []*Chain) []ir.NodeID {
	values := make(map[ir.NodeID]bool, len(chains))
	for _, c := range chains {
		if len(c.Nodes) > 0 {
			values[c.Nodes[0]] = true
		}
	}

	for {
		ordered := sortedKeys(values)
		temp := make(map[ir.NodeID]bool)
		for _, a := range ordered {
			for _, b := range ordered {
				if a == b {
					continue
				}
				if d.IsDescendant(a, b) {
					temp[a] = true

					break
				}
			}
		}
		if len(temp) == 0 {
			break
		}
		for a := range temp {
			delete(values, a)
			c, idx := arena[a].chain, arena[a].chainIndex
			if c != nil && idx > 0 {
				values[c.Nodes[idx-1]] = true
			}
		}
	}

	return sortedKeys(values)
}

func sortedKeys(m map[ir.NodeID]bool) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(m))
	for k := range m {
		out = insertSorted(out, k)
	}

	return out
}

// computeAntichain runs matching, chain extraction, and antichain
// extraction over d, returning a maximum antichain. Called once by the
// driver after the DVG is built, and again by the serialization heuristic
// after every inserted edge.
func computeAntichain(d *Dvg, arena map[ir.NodeID]*rssNode) []ir.NodeID {
	matchL, matchR := maxBipartiteMatching(d)
	chains := buildChains(d, arena, matchL, matchR)

	return extractAntichain(d, arena, chains)
}
