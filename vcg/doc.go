// Package vcg implements the pass's optional debug-dump sink: rendering the
// connected bipartite components, potential-killer sets, the DVG and its killer
// chains in the plain VCG graph format, one file per block per register
// class per requested view.
//
// vcg.Sink is the seam the rss package writes through; FileSink is the only
// production implementation, writing one file named
// <irg>-<class>-block-<n>-RSS-<VIEW>.vcg per Dump call. A caller that wants
// the graphs in memory instead (tests, tooling) can implement Sink directly.
package vcg
