package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regsaturation/rssprep/ir"
)

func TestDvg_AddEdge_RejectsReverseEdge(t *testing.T) {
	d := newDvg()
	d.AddEdge(ir.NodeID(1), ir.NodeID(2))

	assert.PanicsWithValue(t, ErrDvgReverseEdgeExists, func() {
		d.AddEdge(ir.NodeID(2), ir.NodeID(1))
	})
}

func TestDvg_AddEdge_Idempotent(t *testing.T) {
	d := newDvg()
	d.AddEdge(ir.NodeID(1), ir.NodeID(2))
	d.AddEdge(ir.NodeID(1), ir.NodeID(2))

	assert.Equal(t, []ir.NodeID{ir.NodeID(2)}, d.Edges[ir.NodeID(1)])
}

func TestDvg_Descendants(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 2)
	d.AddEdge(2, 3)

	assert.Equal(t, []ir.NodeID{2, 3}, d.Descendants(1))
	assert.True(t, d.IsDescendant(1, 3))
	assert.False(t, d.IsDescendant(3, 1))
}

func TestBuildDVG_ChainTerminatesAtSelfKillingSink(t *testing.T) {
	sink := ir.NodeID(100)
	a := ir.NodeID(1)
	b := ir.NodeID(2)
	arena := map[ir.NodeID]*rssNode{
		a:    {id: a, killer: b},
		b:    {id: b, killer: sink},
		sink: {id: sink, killer: sink},
	}

	d := buildDVG(arena, []ir.NodeID{a, b}, sink)

	assert.ElementsMatch(t, []ir.NodeID{a, b, sink}, d.Nodes)
	assert.Equal(t, []ir.NodeID{b}, d.Edges[a])
	assert.Equal(t, []ir.NodeID{sink}, d.Edges[b])
	assert.Empty(t, d.Edges[sink])
}
