package arch

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/regsaturation/rssprep/ir"
)

// StaticDescription is a table-driven Description: a fixed set of register
// classes plus an explicit NodeID -> class assignment, configured with
// functional options. It stands in for a real ISA description so the pass
// is exercisable (tests) without a real back-end.
type StaticDescription struct {
	mu        sync.RWMutex
	classes   []RegisterClass
	classOf   map[ir.NodeID]RegisterClass
	nonIgnore map[string]*bitset.BitSet
	reserved  map[string]*bitset.BitSet
}

// StaticOption configures a StaticDescription before use.
type StaticOption func(*StaticDescription)

// WithClass registers a RegisterClass where every register is non-ignore and
// none is ABI-reserved, unless overridden by WithIgnoreRegs or
// WithReservedRegs.
// Panics if numRegs is zero: a class with no registers is meaningless.
func WithClass(name string, numRegs uint) StaticOption {
	if numRegs == 0 {
		panic("arch: WithClass requires numRegs > 0")
	}
	return func(d *StaticDescription) {
		cls := RegisterClass{Name: name, NumRegs: numRegs}
		d.classes = append(d.classes, cls)
		full := bitset.New(numRegs)
		for i := uint(0); i < numRegs; i++ {
			full.Set(i)
		}
		d.nonIgnore[name] = full
		d.reserved[name] = bitset.New(numRegs)
	}
}

// WithIgnoreRegs marks the given class-local register indices of name as
// architecturally ignored (excluded from register-pressure accounting).
func WithIgnoreRegs(name string, regs ...uint) StaticOption {
	return func(d *StaticDescription) {
		if bs, ok := d.nonIgnore[name]; ok {
			for _, r := range regs {
				bs.Clear(r)
			}
		}
	}
}

// WithReservedRegs marks the given class-local register indices of name as
// reserved by the ABI.
func WithReservedRegs(name string, regs ...uint) StaticOption {
	return func(d *StaticDescription) {
		if bs, ok := d.reserved[name]; ok {
			for _, r := range regs {
				bs.Set(r)
			}
		}
	}
}

// WithValueClass assigns id to the named register class. The class must
// already have been registered via WithClass in an earlier option.
func WithValueClass(id ir.NodeID, name string) StaticOption {
	return func(d *StaticDescription) {
		for _, c := range d.classes {
			if c.Name == name {
				d.classOf[id] = c
				return
			}
		}
	}
}

// NewStaticDescription builds a StaticDescription by applying opts in order.
func NewStaticDescription(opts ...StaticOption) *StaticDescription {
	d := &StaticDescription{
		classOf:   make(map[ir.NodeID]RegisterClass),
		nonIgnore: make(map[string]*bitset.BitSet),
		reserved:  make(map[string]*bitset.BitSet),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Classes implements Description.
func (d *StaticDescription) Classes() []RegisterClass {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]RegisterClass, len(d.classes))
	copy(out, d.classes)

	return out
}

// ClassOf implements Description.
func (d *StaticDescription) ClassOf(id ir.NodeID) (RegisterClass, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cls, ok := d.classOf[id]

	return cls, ok
}

// NonIgnoreRegs implements Description.
func (d *StaticDescription) NonIgnoreRegs(cls RegisterClass) *bitset.BitSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if bs, ok := d.nonIgnore[cls.Name]; ok {
		return bs.Clone()
	}

	return bitset.New(cls.NumRegs)
}

// ReservedRegs implements Description.
func (d *StaticDescription) ReservedRegs(cls RegisterClass) *bitset.BitSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if bs, ok := d.reserved[cls.Name]; ok {
		return bs.Clone()
	}

	return bitset.New(cls.NumRegs)
}
