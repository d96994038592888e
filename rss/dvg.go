package rss

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/regsaturation/rssprep/ir"
)

// dvgNode adapts ir.NodeID to satisfy gonum's graph.Node.
type dvgNode ir.NodeID

func (n dvgNode) ID() int64 { return int64(n) }

// Dvg is the Disjoint Value DAG: nodes plus forward edges following each
// value's killer chain down to Sink. g is the authoritative gonum graph
// used for traversal (From-adjacency drives Descendants below); Edges/Users
// are kept as sorted-slice adjacency for the rest of the package, which
// needs per-node edge lists far more often than general graph queries.
//
// Only the killer-chain-based construction is implemented here. A variant
// that instead connects u to every node reachable from killer(u) within u's
// original descendant set was considered and rejected: it produces a DAG
// that is not guaranteed disjoint, defeating the Dilworth-chain-partition
// step that follows. This is a deliberate choice, not an oversight.
type Dvg struct {
	g *simple.DirectedGraph

	Nodes []ir.NodeID
	Edges map[ir.NodeID][]ir.NodeID // src -> sorted targets
	Users map[ir.NodeID][]ir.NodeID // tgt -> sorted srcs (dvg_users)

	descCache map[ir.NodeID][]ir.NodeID // memoized forward-reachable set, cleared on every AddEdge
}

func newDvg() *Dvg {
	return &Dvg{
		g:         simple.NewDirectedGraph(),
		Edges:     make(map[ir.NodeID][]ir.NodeID),
		Users:     make(map[ir.NodeID][]ir.NodeID),
		descCache: make(map[ir.NodeID][]ir.NodeID),
	}
}

func (d *Dvg) addNode(n ir.NodeID) {
	if d.g.Node(int64(n)) == nil {
		d.g.AddNode(dvgNode(n))
	}
}

// AddEdge inserts src -> tgt. Panics with ErrDvgReverseEdgeExists if the
// reverse edge tgt -> src is already present: the DVG is required to stay
// acyclic, and a reverse edge arriving here is always a caller bug.
func (d *Dvg) AddEdge(src, tgt ir.NodeID) {
	invariant(!containsSorted(d.Edges[tgt], src), ErrDvgReverseEdgeExists)

	d.addNode(src)
	d.addNode(tgt)
	if !containsSorted(d.Edges[src], tgt) {
		d.Edges[src] = insertSorted(d.Edges[src], tgt)
		d.Users[tgt] = insertSorted(d.Users[tgt], src)
		d.g.SetEdge(d.g.NewEdge(dvgNode(src), dvgNode(tgt)))
	}
	d.Nodes = insertSorted(d.Nodes, src)
	d.Nodes = insertSorted(d.Nodes, tgt)
	d.descCache = make(map[ir.NodeID][]ir.NodeID)
}

// Descendants returns the sorted set of nodes forward-reachable from n over
// DVG edges (memoized until the next AddEdge). The walk follows d.g.From,
// gonum's directed-adjacency iterator, rather than d.Edges: the DVG's
// out-degree is small (killer chains), so a plain stack-based DFS over the
// graph itself is simpler than threading a visited set through the
// traverse package's whole-graph helpers.
func (d *Dvg) Descendants(n ir.NodeID) []ir.NodeID {
	if cached, ok := d.descCache[n]; ok {
		return cached
	}

	out := make([]ir.NodeID, 0)
	if d.g.Node(int64(n)) != nil {
		visited := make(map[int64]bool)
		stack := []int64{int64(n)}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true

			it := d.g.From(cur)
			for it.Next() {
				nxt := it.Node().ID()
				out = insertSorted(out, ir.NodeID(nxt))
				if !visited[nxt] {
					stack = append(stack, nxt)
				}
			}
		}
	}
	d.descCache[n] = out

	return out
}

// IsDescendant reports whether desc is reachable from anc over DVG edges.
func (d *Dvg) IsDescendant(anc, desc ir.NodeID) bool {
	return containsSorted(d.Descendants(anc), desc)
}

// buildDVG constructs the Disjoint Value DAG from k* (arena[*].killer): for
// every candidate u, follow u -> killer(u) -> killer(killer(u)) -> ...
// inserting each hop as an edge, terminating when killer(cur) == cur (Sink
// is its own killer, a construction invariant enforced when the arena is
// seeded, not discovered at runtime).
func buildDVG(arena map[ir.NodeID]*rssNode, candidates []ir.NodeID, sink ir.NodeID) *Dvg {
	d := newDvg()
	d.Nodes = insertSorted(d.Nodes, sink)
	d.addNode(sink)

	for _, u := range candidates {
		cur := u
		for {
			nxt := arena[cur].killer
			if nxt == cur {
				break
			}
			d.AddEdge(cur, nxt)
			cur = nxt
		}
	}

	return d
}
