package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regsaturation/rssprep/ir"
)

func TestComputeDvgPkillers_SingleUserIsAlwaysAPkiller(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 3)
	arena := map[ir.NodeID]*rssNode{1: {id: 1}, 3: {id: 3}}

	computeDvgPkillers(d, arena)

	assert.Equal(t, []ir.NodeID{1}, arena[3].dvgPkillers)
}

func TestComputeDvgPkillers_UserCoveredByAnotherUsersDescendantsExcluded(t *testing.T) {
	// 1 -> 2, 1 -> 3, 2 -> 3: both 1 and 2 are dvg_users of 3. 2 is a DVG
	// descendant of 1, so 1 already "lists" 2 among its descendants and 2
	// is excluded; 1 itself has no other user listing it, so it qualifies.
	d := newDvg()
	d.AddEdge(1, 3)
	d.AddEdge(2, 3)
	d.AddEdge(1, 2)
	arena := map[ir.NodeID]*rssNode{1: {id: 1}, 2: {id: 2}, 3: {id: 3}}

	computeDvgPkillers(d, arena)

	assert.Equal(t, []ir.NodeID{1}, arena[3].dvgPkillers)
}

func TestLessCandidate_DeterministicTieBreak(t *testing.T) {
	a := &Serialization{Src: 5, Tgt: 9}
	b := &Serialization{Src: 5, Tgt: 9}

	assert.False(t, lessCandidate(1, a, 1, b))
	assert.True(t, lessCandidate(1, &Serialization{Src: 2, Tgt: 1}, 1, a))
	assert.True(t, lessCandidate(0, a, 1, b))
}

func TestUnionDescendants(t *testing.T) {
	d := newDvg()
	d.AddEdge(1, 3)
	d.AddEdge(2, 4)

	got := unionDescendants(d, []ir.NodeID{1, 2})
	assert.Equal(t, []ir.NodeID{3, 4}, got)
}
