package height

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/regsaturation/rssprep/ir"
)

type irNode ir.NodeID

func (n irNode) ID() int64 { return int64(n) }

// Heights holds the result of the most recent Recompute for one block: a
// longest-path-to-sink distance per node, and a memoized reachability cache.
type Heights struct {
	block   ir.BlockID
	heights map[ir.NodeID]int
	max     int

	g          *ir.Graph
	reachCache map[ir.NodeID][]ir.NodeID // sorted descendant cache, invalidated wholesale on Recompute
}

// New returns an empty Heights; call Recompute before querying it.
func New() *Heights {
	return &Heights{}
}

// Recompute rebuilds the longest-path-to-sink heights for every node of
// block, over the union of data and dependency edges. It must be called
// again after every dependency edge insertion that touches block, before
// any height or reachability query reflects the new edge.
func (h *Heights) Recompute(g *ir.Graph, block ir.BlockID) error {
	if g == nil {
		return ErrNilGraph
	}

	nodes := g.BlockNodes(block)
	dg := simple.NewDirectedGraph()
	for _, n := range nodes {
		dg.AddNode(irNode(n))
	}
	inBlock := make(map[ir.NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		inBlock[n] = struct{}{}
	}
	for _, n := range nodes {
		for _, s := range g.AllSuccessors(n) {
			if _, ok := inBlock[s]; !ok {
				continue // successor outside the block; not part of this height graph
			}
			if dg.HasEdgeFromTo(int64(n), int64(s)) {
				continue
			}
			dg.SetEdge(simple.Edge{F: irNode(n), T: irNode(s)})
		}
	}

	order, err := topo.Sort(dg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBlockNotAcyclic, err)
	}

	heights := make(map[ir.NodeID]int, len(nodes))
	maxHeight := 0
	// Process in reverse topological order so every successor's height is
	// already known when a node's own height is computed.
	for i := len(order) - 1; i >= 0; i-- {
		id := ir.NodeID(order[i].ID())
		best := 0
		succIt := dg.From(int64(id))
		for succIt.Next() {
			sid := ir.NodeID(succIt.Node().ID())
			if v := heights[sid] + 1; v > best {
				best = v
			}
		}
		heights[id] = best
		if best > maxHeight {
			maxHeight = best
		}
	}

	h.block = block
	h.heights = heights
	h.max = maxHeight
	h.g = g
	h.reachCache = make(map[ir.NodeID][]ir.NodeID)

	return nil
}

// Height returns the longest-path-to-sink distance of id, 0 if unknown.
func (h *Heights) Height(id ir.NodeID) int {
	return h.heights[id]
}

// Max returns the block's overall critical-path length (max over all
// node heights).
func (h *Heights) Max() int {
	return h.max
}

// Reachable reports whether a path from a to b exists within the block's
// data+dependency graph, as of the last Recompute.
func (h *Heights) Reachable(a, b ir.NodeID) bool {
	if a == b {
		return true
	}
	desc, ok := h.reachCache[a]
	if !ok {
		desc = h.descendants(a)
		h.reachCache[a] = desc
	}
	i := sort.Search(len(desc), func(i int) bool { return desc[i] >= b })

	return i < len(desc) && desc[i] == b
}

// descendants computes the sorted set of nodes reachable from a by forward
// DFS over data+dependency edges, restricted to h.block.
func (h *Heights) descendants(a ir.NodeID) []ir.NodeID {
	visited := map[ir.NodeID]struct{}{a: {}}
	stack := []ir.NodeID{a}
	out := make([]ir.NodeID, 0)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, s := range h.g.AllSuccessors(cur) {
			if n, err := h.g.Node(s); err != nil || n.Block != h.block {
				continue
			}
			if _, ok := visited[s]; ok {
				continue
			}
			visited[s] = struct{}{}
			out = append(out, s)
			stack = append(stack, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
