package rss

import (
	"github.com/regsaturation/rssprep/arch"
	"github.com/regsaturation/rssprep/ir"
)

// nodeInfoBuilder computes, for each candidate node, the direct consumer
// set and the full transitively reachable descendant set, both closed
// under the block and never containing tuple-mode nodes (Projs stand in
// for a tuple producer).
type nodeInfoBuilder struct {
	g     *ir.Graph
	desc  arch.Description
	block ir.BlockID
	sink  ir.NodeID
}

// nextHops resolves cur's single-hop successors for node-info purposes:
// ignore nodes are skipped, control-mode successors are skipped, tuple
// successors are replaced by their non-ignore Projs, and an out-of-block
// successor contributes the synthetic Sink (and marks live_out).
func (b *nodeInfoBuilder) nextHops(cur ir.NodeID) (hops []ir.NodeID, liveOut bool) {
	for _, s := range b.g.DataSuccessors(cur) {
		if b.g.IsIgnore(s) {
			continue
		}
		n, err := b.g.Node(s)
		if err != nil {
			continue
		}
		if n.Mode == ir.ModeControl {
			continue
		}
		if n.Block != b.block {
			liveOut = true

			continue
		}
		if n.Mode == ir.ModeTuple {
			for _, p := range b.g.Projs(s) {
				if b.g.IsIgnore(p) {
					continue
				}
				hops = append(hops, p)
			}

			continue
		}
		hops = append(hops, s)
	}

	return hops, liveOut
}

// build computes the rssNode for n, memoizing via info.handled.
func (b *nodeInfoBuilder) build(arena map[ir.NodeID]*rssNode, n ir.NodeID) *rssNode {
	info, ok := arena[n]
	if !ok {
		info = &rssNode{id: n, killer: b.sink}
		arena[n] = info
	}
	if info.handled {
		return info
	}

	if node, err := b.g.Node(n); err == nil {
		invariant(node.Mode != ir.ModeTuple, ErrTupleNodeInNodeInfo)
	}

	hops, liveOut := b.nextHops(n)
	if liveOut {
		info.liveOut = true
		info.consumers = insertSorted(info.consumers, b.sink)
		info.descendants = insertSorted(info.descendants, b.sink)
	}
	for _, h := range hops {
		info.consumers = insertSorted(info.consumers, h)
	}

	seen := map[ir.NodeID]struct{}{n: {}}
	var walk func(cur ir.NodeID)
	walk = func(cur ir.NodeID) {
		hh, lo := b.nextHops(cur)
		if lo {
			info.descendants = insertSorted(info.descendants, b.sink)
		}
		for _, h := range hh {
			if _, done := seen[h]; done {
				continue
			}
			seen[h] = struct{}{}
			info.descendants = insertSorted(info.descendants, h)
			walk(h)
		}
	}
	walk(n)

	info.handled = true

	return info
}

// buildNodeInfo runs §4.1 over every candidate plus Sink, returning the
// arena keyed by NodeID.
func buildNodeInfo(g *ir.Graph, desc arch.Description, block ir.BlockID, sink ir.NodeID, candidates []ir.NodeID) map[ir.NodeID]*rssNode {
	b := &nodeInfoBuilder{g: g, desc: desc, block: block, sink: sink}
	arena := make(map[ir.NodeID]*rssNode, len(candidates)+1)
	arena[sink] = &rssNode{id: sink, killer: sink, handled: true}

	for _, n := range candidates {
		b.build(arena, n)
	}

	return arena
}
