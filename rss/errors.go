package rss

import "errors"

// Sentinel errors for conditions that indicate a programmer bug in an
// upstream component rather than a user error: each one is raised by panic
// rather than returned. invariant wraps the check-and-panic idiom used
// throughout the package.
var (
	ErrTupleNodeInNodeInfo    = errors.New("rss: tuple-mode node reached node-info builder")
	ErrDvgReverseEdgeExists   = errors.New("rss: dvg edge insertion observes reverse edge already present")
	ErrNegativeMatchingCost   = errors.New("rss: bipartite matching produced a negative cost")
	ErrIndexNotFound          = errors.New("rss: required index not found")
	ErrOmegaInvariantViolated = errors.New("rss: mu1 < mu2 in serialization heuristic")
)

// Ordinary argument-validation errors returned from Prepare, distinct from
// the invariant panics above.
var (
	ErrNilGraph   = errors.New("rss: graph is nil")
	ErrNilArch    = errors.New("rss: architecture description is nil")
	ErrNilHeights = errors.New("rss: heights collaborator is nil")
)

// invariant panics with err if cond is false. A panic here means an
// earlier component produced an inconsistent structure, not that the pass
// encountered bad input.
func invariant(cond bool, err error) {
	if !cond {
		panic(err)
	}
}
