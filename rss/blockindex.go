package rss

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/regsaturation/rssprep/ir"
)

// blockIndex maps a set of NodeIds to dense 0..N-1 positions: a sorted
// array plus a position map. The serialization heuristic builds one over the
// current antichain on every iteration; it backs the bitset-indexing scheme
// of that heuristic's antichain-membership tests, not because ir.NodeID
// needs help being ordered.
type blockIndex struct {
	ids []ir.NodeID // sorted
	pos map[ir.NodeID]int
}

func newBlockIndex(ids []ir.NodeID) *blockIndex {
	sorted := append([]ir.NodeID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	pos := make(map[ir.NodeID]int, len(sorted))
	for i, id := range sorted {
		pos[id] = i
	}

	return &blockIndex{ids: sorted, pos: pos}
}

// bitsetOf returns a bitset over the index's dense space with every id in
// members set.
func (b *blockIndex) bitsetOf(members []ir.NodeID) *bitset.BitSet {
	bs := bitset.New(uint(len(b.ids)))
	for _, m := range members {
		if i, ok := b.pos[m]; ok {
			bs.Set(uint(i))
		}
	}

	return bs
}
