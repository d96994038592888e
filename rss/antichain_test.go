package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regsaturation/rssprep/ir"
)

func TestComputeAntichain_SingleChainYieldsSizeOneAntichain(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 2)
	d.AddEdge(2, 3)
	arena := map[ir.NodeID]*rssNode{1: {id: 1}, 2: {id: 2}, 3: {id: 3}}

	antichain := computeAntichain(d, arena)
	assert.Equal(t, []ir.NodeID{1}, antichain)
}

func TestComputeAntichain_TwoIndependentChainsYieldSizeTwoAntichain(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 3)
	d.AddEdge(2, 3)
	arena := map[ir.NodeID]*rssNode{1: {id: 1}, 2: {id: 2}, 3: {id: 3}}

	antichain := computeAntichain(d, arena)
	assert.ElementsMatch(t, []ir.NodeID{1, 2}, antichain)
}

func TestMaxBipartiteMatching_ChainsPartitionAllNodes(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 3)
	d.AddEdge(2, 3)
	d.Nodes = insertSorted(d.Nodes, 4) // isolated node, no edges

	matchL, matchR := maxBipartiteMatching(d)
	arena := map[ir.NodeID]*rssNode{1: {id: 1}, 2: {id: 2}, 3: {id: 3}, 4: {id: 4}}
	chains := buildChains(d, arena, matchL, matchR)

	total := 0
	for _, c := range chains {
		total += len(c.Nodes)
	}
	assert.Equal(t, len(d.Nodes), total)
}
