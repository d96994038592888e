package arch

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/regsaturation/rssprep/ir"
)

// RegisterClass names a group of interchangeable physical registers (e.g.
// "gp", "fp"). NumRegs is the class's total physical register count,
// including ignored and ABI-reserved registers.
type RegisterClass struct {
	Name    string
	NumRegs uint
}

// Description is the architecture collaborator: register-class
// enumeration, the class of a given value, and the two register bitsets the
// serialization heuristic combines into the available-register budget R.
//
// NonIgnoreRegs and ReservedRegs return bitsets indexed by a class-local
// register number (0..NumRegs-1), not by NodeID.
type Description interface {
	// Classes enumerates every register class of the ISA.
	Classes() []RegisterClass
	// ClassOf returns the register class of a value, or (zero, false) if the
	// node carries no allocatable register (control-flow, ignored, tuple).
	ClassOf(id ir.NodeID) (RegisterClass, bool)
	// NonIgnoreRegs is the bitset of registers of cls that do contribute to
	// register pressure (the complement of architecturally-ignored registers
	// such as the stack/frame pointer).
	NonIgnoreRegs(cls RegisterClass) *bitset.BitSet
	// ReservedRegs is the bitset of cls's registers reserved by the ABI
	// (e.g. a fixed return-address register) and therefore unavailable to
	// the scheduler's register allocator.
	ReservedRegs(cls RegisterClass) *bitset.BitSet
}

// AvailableRegs returns R = |NonIgnoreRegs(cls)| - |NonIgnoreRegs(cls) ∩ ReservedRegs(cls)|,
// the register budget the serialization heuristic saturates against.
func AvailableRegs(d Description, cls RegisterClass) uint {
	nonIgnore := d.NonIgnoreRegs(cls).Clone()
	nonIgnore.InPlaceDifference(d.ReservedRegs(cls))

	return nonIgnore.Count()
}
