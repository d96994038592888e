package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsaturation/rssprep/arch"
	"github.com/regsaturation/rssprep/ir"
)

func TestDecomposeBipartite_PartitionsDisjointParentsAndChildren(t *testing.T) {
	g := ir.NewGraph()
	a := g.NewNode(1, ir.ModeNormal, "gp")
	b := g.NewNode(1, ir.ModeNormal, "gp")
	require.NoError(t, g.AddDataEdge(a, b))

	_, sink := g.SourceSink(1)
	candidates := []ir.NodeID{a, b}
	arena := buildNodeInfo(g, arch.NewStaticDescription(), 1, sink, candidates)
	computePK(arena, candidates, sink)

	comps := decomposeBipartite(arena, candidates)
	require.NotEmpty(t, comps)

	for _, c := range comps {
		for _, p := range c.Parents {
			assert.NotContains(t, c.Children, p)
		}
		seen := map[ir.NodeID]bool{}
		for _, e := range c.KillEdges {
			assert.Contains(t, c.Parents, e.Src)
			assert.Contains(t, c.Children, e.Tgt)
			seen[e.Src] = true
		}
		for _, p := range c.Parents {
			assert.True(t, seen[p], "every parent must have at least one kill edge")
		}
	}
}

func TestDecomposeBipartite_CoversEveryKilledValueExactlyOnce(t *testing.T) {
	g := ir.NewGraph()
	a := g.NewNode(1, ir.ModeNormal, "gp")
	b := g.NewNode(1, ir.ModeNormal, "gp")
	c := g.NewNode(1, ir.ModeNormal, "gp")
	require.NoError(t, g.AddDataEdge(a, c))
	require.NoError(t, g.AddDataEdge(b, c))

	_, sink := g.SourceSink(1)
	candidates := []ir.NodeID{a, b, c}
	arena := buildNodeInfo(g, arch.NewStaticDescription(), 1, sink, candidates)
	computePK(arena, candidates, sink)

	comps := decomposeBipartite(arena, candidates)
	seenParents := map[ir.NodeID]int{}
	for _, comp := range comps {
		for _, p := range comp.Parents {
			seenParents[p]++
		}
	}
	for _, p := range []ir.NodeID{a, b} {
		assert.Equal(t, 1, seenParents[p])
	}
}
