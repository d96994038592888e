package rss

import (
	"fmt"

	"github.com/regsaturation/rssprep/ir"
	"github.com/regsaturation/rssprep/vcg"
)

func nodeTitle(id ir.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func dumpCBC(cfg *config, class string, block ir.BlockID, comps []*CbcComponent) {
	if cfg.sink == nil || cfg.mask&DebugCBC == 0 {
		return
	}
	req := vcg.Request{IRG: cfg.irgName, Class: class, Block: int(block), View: vcg.ViewCBC}
	_ = cfg.sink.Dump(req, func(w *vcg.Writer) {
		for _, c := range comps {
			for _, p := range c.Parents {
				w.Node(nodeTitle(p), fmt.Sprintf("parent(cbc %d)", c.Nr))
			}
			for _, ch := range c.Children {
				w.Node(nodeTitle(ch), fmt.Sprintf("child(cbc %d)", c.Nr))
			}
			for _, e := range c.KillEdges {
				w.Edge(nodeTitle(e.Src), nodeTitle(e.Tgt), "kill")
			}
		}
	})
}

func dumpKill(cfg *config, class string, block ir.BlockID, arena map[ir.NodeID]*rssNode, candidates []ir.NodeID) {
	if cfg.sink == nil || cfg.mask&DebugKill == 0 {
		return
	}
	req := vcg.Request{IRG: cfg.irgName, Class: class, Block: int(block), View: vcg.ViewKILL}
	_ = cfg.sink.Dump(req, func(w *vcg.Writer) {
		for _, u := range candidates {
			w.Node(nodeTitle(u), "value")
			for _, v := range arena[u].pkillers {
				w.Edge(nodeTitle(u), nodeTitle(v), "pk")
			}
		}
	})
}

func dumpPKG(cfg *config, class string, block ir.BlockID, arena map[ir.NodeID]*rssNode, candidates []ir.NodeID, sink ir.NodeID) {
	if cfg.sink == nil || cfg.mask&DebugPKG == 0 {
		return
	}
	req := vcg.Request{IRG: cfg.irgName, Class: class, Block: int(block), View: vcg.ViewPKG}
	_ = cfg.sink.Dump(req, func(w *vcg.Writer) {
		for _, u := range candidates {
			w.Node(nodeTitle(u), "value")
			if k := arena[u].killer; k != 0 {
				w.Edge(nodeTitle(u), nodeTitle(k), "killer")
			}
		}
		w.Node(nodeTitle(sink), "Sink")
	})
}

func dumpDVG(cfg *config, class string, block ir.BlockID, d *Dvg) {
	if cfg.sink == nil || cfg.mask&DebugDVG == 0 {
		return
	}
	req := vcg.Request{IRG: cfg.irgName, Class: class, Block: int(block), View: vcg.ViewDVG}
	_ = cfg.sink.Dump(req, func(w *vcg.Writer) {
		for _, n := range d.Nodes {
			w.Node(nodeTitle(n), "dvg")
			for _, s := range d.Edges[n] {
				w.Edge(nodeTitle(n), nodeTitle(s), "dvg-edge")
			}
		}
	})
}

func dumpDVGPkg(cfg *config, class string, block ir.BlockID, arena map[ir.NodeID]*rssNode, d *Dvg) {
	if cfg.sink == nil || cfg.mask&DebugDVGPkg == 0 {
		return
	}
	req := vcg.Request{IRG: cfg.irgName, Class: class, Block: int(block), View: vcg.ViewDVGPKG}
	_ = cfg.sink.Dump(req, func(w *vcg.Writer) {
		for _, n := range d.Nodes {
			w.Node(nodeTitle(n), "dvg")
			for _, v := range arena[n].dvgPkillers {
				w.Edge(nodeTitle(v), nodeTitle(n), "dvg-pk")
			}
		}
	})
}
