package height

import "errors"

var (
	// ErrNilGraph indicates a nil *ir.Graph was passed to Recompute.
	ErrNilGraph = errors.New("height: graph is nil")

	// ErrBlockNotAcyclic indicates the block's data+dependency graph contains
	// a cycle; Recompute reports it rather than returning a meaningless
	// height.
	ErrBlockNotAcyclic = errors.New("height: block is not acyclic")
)
