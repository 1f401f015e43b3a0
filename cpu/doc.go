// Package cpu implements the processor and assembler for the embervm machine.
//
// The CPU executes a stream of packed 32-bit instruction words against a
// byte-addressed memory with a memory-mapped peripheral window. Each word
// carries a condition code, an opcode, and up to three operand slots that
// hold either a register index or an inline immediate; immediates too wide
// for their inline field spill into a trailing extension word.
//
// The assembler translates a line-oriented assembly language into that word
// stream, supporting labels, constants, data words, interrupt-stub
// redirection, and compile-time expression evaluation.
package cpu
