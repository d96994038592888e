package rss

import (
	"sort"

	"github.com/regsaturation/rssprep/ir"
)

// insertSorted returns s with v inserted in sorted position, deduplicated.
// Every set-valued field on rssNode (consumers, descendants, pkillers, ...)
// is maintained this way: an ordered slice gives O(log n) Contains via
// sort.Search without pulling in a separate set type.
func insertSorted(s []ir.NodeID, v ir.NodeID) []ir.NodeID {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// containsSorted reports whether v is present in the sorted slice s.
func containsSorted(s []ir.NodeID, v ir.NodeID) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })

	return i < len(s) && s[i] == v
}

// sortedIntersect returns the sorted intersection of a and b.
func sortedIntersect(a, b []ir.NodeID) []ir.NodeID {
	out := make([]ir.NodeID, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// sortedDifference returns the sorted set a \ b.
func sortedDifference(a, b []ir.NodeID) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(a))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			continue
		}
		out = append(out, v)
	}

	return out
}

// sortedUnion returns the sorted union of a and b.
func sortedUnion(a, b []ir.NodeID) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// rssNode is the per-candidate-node analysis record. One arena holds every
// rssNode for a single (block, register class) analysis; the arena and
// every rssNode in it are dropped wholesale once the class finishes.
type rssNode struct {
	id ir.NodeID

	consumers   []ir.NodeID // sorted
	descendants []ir.NodeID // sorted

	pkillers []ir.NodeID // sorted; v such that v in PK(this)

	killValues []ir.NodeID // inverse of pkillers: u such that this in pkillers(u)

	dvgPkillers []ir.NodeID // analogue of pkillers within the DVG, computed by serialize.go

	killer ir.NodeID // k*(this); Sink until assigned, and Sink's own killer is itself

	chain      *Chain
	chainIndex int // this node's position within chain.Nodes

	liveOut bool
	handled bool
}

// CbcComponent is a connected bipartite component of the kill relation.
type CbcComponent struct {
	Nr        int
	Parents   []ir.NodeID
	Children  []ir.NodeID
	KillEdges []KillEdge
}

// KillEdge is one edge of EPK: src kills into tgt, i.e. tgt in pkillers(src).
type KillEdge struct {
	Src, Tgt ir.NodeID
}

// Chain is an ordered sequence of NodeIds produced by the minimum chain
// partition; element i+1 is the matched successor of element i.
type Chain struct {
	Nodes []ir.NodeID
}

// Serialization is one candidate serialization edge considered by the
// heuristic.
type Serialization struct {
	Src, Tgt       ir.NodeID
	Omega1, Omega2 int
}
