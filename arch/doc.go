// Package arch is a minimal stand-in for the architecture description the
// register-saturation pass consumes: register-class enumeration, the
// register class of a given value, and the two register bitsets
// (non-ignore registers, ABI-reserved registers) the serialization
// heuristic needs to compute the available-register budget R.
//
// Bitsets are github.com/bits-and-blooms/bitset.
package arch
