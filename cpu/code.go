package cpu

import (
	"fmt"
)

// Cond is a condition code. Every instruction carries one; a failed
// condition skips execution of that instruction.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_AL = Cond(0) // al
	COND_EQ = Cond(1) // eq
	COND_NE = Cond(2) // ne
	COND_GT = Cond(3) // gt
	COND_GE = Cond(4) // ge
	COND_LT = Cond(5) // lt
	COND_LE = Cond(6) // le
)

// Op is an instruction opcode.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	// Zero-operand family.
	OP_NOP = Op(0) // nop
	OP_RET = Op(1) // ret
	OP_CLI = Op(2) // cli
	OP_SEI = Op(3) // sei

	// One-operand family.
	OP_JMP  = Op(4)  // jmp
	OP_CALL = Op(5)  // call
	OP_PUSH = Op(6)  // push
	OP_POP  = Op(7)  // pop
	OP_ITOF = Op(8)  // itof
	OP_FTOI = Op(9)  // ftoi
	OP_RNGI = Op(10) // rngi
	OP_RNGF = Op(11) // rngf

	// Two-operand family.
	OP_MOV  = Op(12) // mov
	OP_CMPI = Op(13) // cmpi
	OP_CMPU = Op(14) // cmpu
	OP_CMPF = Op(15) // cmpf

	// Three-operand family. LDRB and STRB are reserved encodings; the
	// execution path rejects them.
	OP_LDR  = Op(16) // ldr
	OP_STR  = Op(17) // str
	OP_LDRB = Op(18) // ldrb
	OP_STRB = Op(19) // strb
	OP_SHRS = Op(20) // shrs
	OP_SHRU = Op(21) // shru
	OP_SHL  = Op(22) // shl
	OP_AND  = Op(23) // and
	OP_OR   = Op(24) // or
	OP_XOR  = Op(25) // xor
	OP_NOT  = Op(26) // not
	OP_ADD  = Op(27) // add
	OP_SUB  = Op(28) // sub
	OP_MUL  = Op(29) // mul
	OP_DIV  = Op(30) // div
	OP_MOD  = Op(31) // mod
	OP_ADDF = Op(32) // addf
	OP_SUBF = Op(33) // subf
	OP_MULF = Op(34) // mulf
	OP_DIVF = Op(35) // divf
	OP_MODF = Op(36) // modf
)

// Instruction word bit layout, MSB at 31:
//
//	[31:29] condition code
//	[28:23] opcode
//	[22]    operand 1 is a register
//	[21:16] operand 1 field
//	[15]    operand 2 is a register
//	[14:9]  operand 2 field
//	[8]     operand 3 is a register
//	[7:2]   operand 3 field
//	[1:0]   low immediate bits
//
// The inline immediate occupies the low bits of the word, starting at the
// first operand slot whose register flag is clear: 22 bits when operand 1
// is the immediate, 15 bits for operand 2, 8 bits for operand 3. An inline
// field holding its all-ones mask is the sentinel announcing a trailing
// 32-bit extension word.
const (
	condShift = 29
	opShift   = 23

	INLINE_MASK_OP1 = uint32(1<<22) - 1
	INLINE_MASK_OP2 = uint32(1<<15) - 1
	INLINE_MASK_OP3 = uint32(1<<8) - 1
)

var operandFlagShift = [3]uint{22, 15, 8}
var operandFieldShift = [3]uint{16, 9, 2}
var inlineMask = [3]uint32{INLINE_MASK_OP1, INLINE_MASK_OP2, INLINE_MASK_OP3}

// InlineMask returns the all-ones inline immediate mask for the given
// operand slot (0 to 2). The mask value doubles as the extension-word
// sentinel for that slot.
func InlineMask(slot int) uint32 {
	return inlineMask[slot]
}

// Code is a single packed instruction word.
type Code uint32

// MakeCode packs a condition, opcode, and register operands. Slots beyond
// the given registers are left clear for an inline immediate.
func MakeCode(cond Cond, op Op, regs ...int) Code {
	word := uint32(cond)<<condShift | uint32(op)<<opShift
	for n, reg := range regs {
		word |= 1 << operandFlagShift[n]
		word |= uint32(reg&0x3f) << operandFieldShift[n]
	}
	return Code(word)
}

// WithInline returns the code with the inline immediate bits for the given
// operand slot set. Bits must already fit the slot's mask.
func (code Code) WithInline(slot int, bits uint32) Code {
	return code | Code(bits&inlineMask[slot])
}

// Cond returns the condition code.
func (code Code) Cond() Cond {
	return Cond((uint32(code) >> condShift) & 0x7)
}

// Op returns the opcode.
func (code Code) Op() Op {
	return Op((uint32(code) >> opShift) & 0x3f)
}

// Operand returns the register index and register flag for a slot (0 to 2).
// The field value is only meaningful while every earlier slot holds a
// register; later bits belong to the inline immediate.
func (code Code) Operand(slot int) (reg int, isReg bool) {
	isReg = (uint32(code)>>operandFlagShift[slot])&1 == 1
	reg = int((uint32(code) >> operandFieldShift[slot]) & 0x3f)
	return
}

// Inline returns the inline immediate bits and the slot they occupy. The
// immediate lives in the first operand slot whose register flag is clear;
// ok is false when all three slots hold registers.
func (code Code) Inline() (bits uint32, slot int, ok bool) {
	for slot = range 3 {
		_, isReg := code.Operand(slot)
		if !isReg {
			bits = uint32(code) & inlineMask[slot]
			ok = true
			return
		}
	}
	return
}

// Sentinel reports whether the inline immediate equals its slot's mask,
// meaning the next word in the stream is a 32-bit extension word.
func (code Code) Sentinel() bool {
	bits, slot, ok := code.Inline()
	return ok && bits == inlineMask[slot]
}

// String returns the assembly language representation of this word.
func (code Code) String() (out string) {
	out = code.Op().String()
	if code.Cond() != COND_AL {
		out += "." + code.Cond().String()
	}

	if code.Op() <= OP_SEI {
		return
	}

	for n := range 3 {
		reg, isReg := code.Operand(n)
		if !isReg {
			bits, slot, _ := code.Inline()
			if bits == inlineMask[slot] {
				out += " #ext"
			} else {
				out += fmt.Sprintf(" #%d", bits)
			}
			break
		}
		out += fmt.Sprintf(" r%d", reg)
	}

	return
}
