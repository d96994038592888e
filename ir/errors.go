package ir

import "errors"

// Sentinel errors for the ir package. Callers branch on these with errors.Is;
// they are never reformatted or wrapped with string concatenation.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("ir: graph is nil")

	// ErrNodeNotFound indicates a NodeID not present in the graph.
	ErrNodeNotFound = errors.New("ir: node not found")

	// ErrBlockMismatch indicates an operation mixed nodes from different blocks
	// where a single-block operation was expected.
	ErrBlockMismatch = errors.New("ir: node does not belong to expected block")

	// ErrWouldCreateCycle indicates a dependency edge was rejected because the
	// reverse path already exists, which would make the dependency graph cyclic.
	ErrWouldCreateCycle = errors.New("ir: dependency edge would create a cycle")

	// ErrSelfEdge indicates an edge from a node to itself was rejected.
	ErrSelfEdge = errors.New("ir: self-referential edge rejected")

	// ErrTupleCandidate indicates a tuple-mode (compound-result) node was
	// offered as an analysis candidate; only its Projs may be candidates.
	ErrTupleCandidate = errors.New("ir: tuple-mode node cannot be a candidate")
)
