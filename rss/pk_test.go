package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsaturation/rssprep/arch"
	"github.com/regsaturation/rssprep/ir"
)

func TestComputePK_StraightLine(t *testing.T) {
	g := ir.NewGraph()
	a := g.NewNode(1, ir.ModeNormal, "gp")
	b := g.NewNode(1, ir.ModeNormal, "gp")
	require.NoError(t, g.AddDataEdge(a, b))
	other := g.NewNode(2, ir.ModeNormal, "gp")
	require.NoError(t, g.AddDataEdge(b, other))

	_, sink := g.SourceSink(1)
	candidates := []ir.NodeID{a, b}
	arena := buildNodeInfo(g, arch.NewStaticDescription(), 1, sink, candidates)
	computePK(arena, candidates, sink)

	// For every u, every v in pkillers(u) must satisfy
	// descendants(v) ∩ consumers(u) ⊆ {v}.
	for _, u := range candidates {
		for _, v := range arena[u].pkillers {
			vinfo := arena[v]
			for _, d := range vinfo.descendants {
				if d == v {
					continue
				}
				assert.NotContains(t, arena[u].consumers, d)
			}
		}
	}

	assert.Contains(t, arena[a].pkillers, b)
	assert.Contains(t, arena[b].killValues, a)
}

func TestComputePK_SharedConsumerKillsBothProducers(t *testing.T) {
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

	assert.Contains(t, arena[a].pkillers, c)
	assert.Contains(t, arena[b].pkillers, c)
}
