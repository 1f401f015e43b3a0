package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCode(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xffffffff))
	f.Add(uint32(MakeCode(COND_NE, OP_MOV, 63).WithInline(1, 0x7ffe)))
	f.Add(uint32(MakeCode(COND_AL, OP_JMP).WithInline(0, INLINE_MASK_OP1)))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		code := Code(word)

		// Decoding any word is total: field extraction never escapes its
		// bit widths, and String never panics.
		_ = code.String()

		assert.GreaterOrEqual(int(code.Cond()), 0)
		assert.Less(int(code.Cond()), 8)
		assert.GreaterOrEqual(int(code.Op()), 0)
		assert.Less(int(code.Op()), 64)

		sawImm := false
		for n := range 3 {
			reg, isReg := code.Operand(n)
			assert.GreaterOrEqual(reg, 0)
			assert.Less(reg, NUM_REGISTERS)
			if !isReg && !sawImm {
				sawImm = true
				bits, slot, ok := code.Inline()
				assert.True(ok)
				assert.Equal(n, slot)
				assert.LessOrEqual(bits, InlineMask(slot))
				assert.Equal(bits == InlineMask(slot), code.Sentinel())
			}
		}
		if !sawImm {
			_, _, ok := code.Inline()
			assert.False(ok)
			assert.False(code.Sentinel())
		}

		// Re-packing an all-register decode reproduces the operand bits.
		r0, ok0 := code.Operand(0)
		r1, ok1 := code.Operand(1)
		r2, ok2 := code.Operand(2)
		if ok0 && ok1 && ok2 {
			repack := MakeCode(code.Cond(), code.Op(), r0, r1, r2)
			assert.Equal(code&^Code(0x3), repack&^Code(0x3))
		}
	})
}
