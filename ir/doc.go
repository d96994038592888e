// Package ir is a minimal, self-contained stand-in for the back-end
// intermediate-representation library that a register-saturation scheduling
// preparation pass consumes: node iteration, edge queries, Proj/tuple
// handling, and dependency-edge insertion.
//
// A Graph is guarded by separate sync.RWMutex locks for node storage and
// edge/adjacency storage, reports rejected operations as sentinel errors,
// and is built up through plain constructor methods. Node identity is an
// opaque, totally ordered integer handle so the consuming pass can use it
// as a stable iteration and tie-break key.
//
// Two kinds of out-edges are tracked separately: data edges (the def-use
// relationship a producer has to its consumers) and dependency edges (the
// pass's only mutation, inserted to serialize otherwise-independent values).
// Analyses that must only see the original dataflow (node-info collection,
// potential-killer computation, the disjoint value DAG) walk data edges;
// analyses that must see the full scheduling constraint set (height
// recomputation, cycle admissibility) walk both.
package ir
