package arch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regsaturation/rssprep/arch"
	"github.com/regsaturation/rssprep/ir"
)

func TestAvailableRegs_SubtractsIgnoreAndReserved(t *testing.T) {
	d := arch.NewStaticDescription(
		arch.WithClass("gp", 8),
		arch.WithIgnoreRegs("gp", 7), // e.g. the stack pointer
		arch.WithReservedRegs("gp", 0),
	)
	cls := d.Classes()[0]
	// 8 total - 1 ignore - 1 reserved(non-ignore intersection) = 6
	assert.EqualValues(t, 6, arch.AvailableRegs(d, cls))
}

func TestClassOf_UnknownValue(t *testing.T) {
	d := arch.NewStaticDescription(arch.WithClass("gp", 4))
	_, ok := d.ClassOf(ir.NodeID(42))
	assert.False(t, ok)
}

func TestWithValueClass_Assigns(t *testing.T) {
	d := arch.NewStaticDescription(
		arch.WithClass("gp", 4),
		arch.WithValueClass(ir.NodeID(1), "gp"),
	)
	cls, ok := d.ClassOf(ir.NodeID(1))
	assert.True(t, ok)
	assert.Equal(t, "gp", cls.Name)
}
