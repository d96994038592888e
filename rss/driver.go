package rss

import (
	"sort"

	"github.com/regsaturation/rssprep/arch"
	"github.com/regsaturation/rssprep/height"
	"github.com/regsaturation/rssprep/ir"
)

// NodeReport enriches Prepare's result with per-node detail: whether the
// node was live-out and how many serialization edges were inserted on its
// account.
type NodeReport struct {
	Node               ir.NodeID
	LiveOut            bool
	SerializationEdges int
}

// BlockReport summarizes one (block, register class) analysis.
type BlockReport struct {
	Block             ir.BlockID
	Class             string
	InitialSaturation int
	FinalSaturation   int
	EdgesInserted     int
	Nodes             []NodeReport
}

// Prepare is the pass's single entry point: for every block of g and every
// register class the architecture description enumerates, it runs the full
// node-info / potential-killer / bipartite-decomposition / killer-selection
// / DVG / antichain / serialization pipeline and inserts whatever
// dependency edges are needed to bring saturation within budget. It
// returns one BlockReport per (block, class) pair actually analyzed
// (classes with zero candidate
// nodes are skipped).
func Prepare(g *ir.Graph, desc arch.Description, h *height.Heights, opts ...Option) ([]BlockReport, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if desc == nil {
		return nil, ErrNilArch
	}
	if h == nil {
		return nil, ErrNilHeights
	}
	cfg := newConfig(opts...)

	var reports []BlockReport

	for _, block := range g.Blocks() {
		_, sink := g.SourceSink(block)
		if err := h.Recompute(g, block); err != nil {
			return reports, err
		}

		all := g.BlockNodes(block)

		for _, cls := range desc.Classes() {
			candidates := classCandidates(g, desc, all, cls)
			if len(candidates) == 0 {
				continue
			}

			report, err := analyzeClass(g, desc, h, cfg, block, sink, cls, candidates)
			if err != nil {
				return reports, err
			}
			reports = append(reports, report)
		}
	}

	return reports, nil
}

// classCandidates collects every non-ignore, non-control, non-tuple node of
// the block whose register class matches cls.
func classCandidates(g *ir.Graph, desc arch.Description, all []ir.NodeID, cls arch.RegisterClass) []ir.NodeID {
	var out []ir.NodeID
	for _, n := range all {
		if g.IsIgnore(n) {
			continue
		}
		node, err := g.Node(n)
		if err != nil || node.Mode == ir.ModeControl || node.Mode == ir.ModeTuple {
			continue
		}
		nodeCls, ok := desc.ClassOf(n)
		if !ok || nodeCls.Name != cls.Name {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func analyzeClass(
	g *ir.Graph,
	desc arch.Description,
	h *height.Heights,
	cfg *config,
	block ir.BlockID,
	sink ir.NodeID,
	cls arch.RegisterClass,
	candidates []ir.NodeID,
) (BlockReport, error) {
	arena := buildNodeInfo(g, desc, block, sink, candidates)
	computePK(arena, candidates, sink)

	comps := decomposeBipartite(arena, candidates)
	dumpCBC(cfg, cls.Name, block, comps)
	dumpKill(cfg, cls.Name, block, arena, candidates)

	for _, c := range comps {
		selectKillers(arena, c, sink)
	}
	dumpPKG(cfg, cls.Name, block, arena, candidates, sink)

	d := buildDVG(arena, candidates, sink)
	dumpDVG(cfg, cls.Name, block, d)

	antichain := computeAntichain(d, arena)
	initial := len(withoutSink(antichain, sink))

	r := int(arch.AvailableRegs(desc, cls))

	result, err := runSerializationHeuristic(g, h, block, arena, d, antichain, sink, r)
	dumpDVGPkg(cfg, cls.Name, block, arena, d)
	if err != nil {
		return BlockReport{}, err
	}

	return buildReport(block, cls, candidates, arena, initial, result), nil
}

func buildReport(block ir.BlockID, cls arch.RegisterClass, candidates []ir.NodeID, arena map[ir.NodeID]*rssNode, initial int, result serializeResult) BlockReport {
	nodes := make([]NodeReport, 0, len(candidates))
	total := 0
	for _, n := range candidates {
		count := result.insertedByTarget[n]
		total += count
		nodes = append(nodes, NodeReport{
			Node:               n,
			LiveOut:            arena[n].liveOut,
			SerializationEdges: count,
		})
	}

	return BlockReport{
		Block:             block,
		Class:             cls.Name,
		InitialSaturation: initial,
		FinalSaturation:   len(result.antichain),
		EdgesInserted:     total,
		Nodes:             nodes,
	}
}
