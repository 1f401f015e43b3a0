package cpu

import (
	"errors"
	"log"
	"maps"
	"slices"
)

// Generate lays out the parsed instructions and emits the packed word
// stream. Instruction addresses depend on which immediates spill into
// extension words, and label immediates depend on the addresses being
// assigned; the passes below resolve that feedback.
func (asm *Assembler) Generate() (prog *Program, err error) {
	// Pass A: conservative layout. Literal immediates decide their
	// extension word from their value alone; label immediates wait.
	cursor := uint32(0)
	for n := range asm.Opcodes {
		op := &asm.Opcodes[n]
		op.Address = cursor
		op.Extra = 0

		if op.Imm != nil && op.Imm.Kind != SYMBOL_LABEL {
			mask := InlineMask(op.ImmSlot())
			if op.Imm.Float || op.Imm.Value.Uint() >= mask {
				// A value equal to the mask would decode as the
				// sentinel, so it must spill too.
				op.Extra = 1
				op.Ext = op.Imm.Value
				op.Inline = mask
			} else {
				op.Inline = op.Imm.Value.Uint()
			}
		}

		cursor += uint32(1 + op.Extra)
	}

	// Pass B: label resolution. A label immediate needs an extension
	// word once its target address reaches the inline mask, and each new
	// extension word pushes later targets upward, so iterate the
	// monotone needs-extension set to a fixed point.
	needExt := make([]bool, len(asm.Opcodes))
	for changed := true; changed; {
		changed = false

		cursor = 0
		for n := range asm.Opcodes {
			op := &asm.Opcodes[n]
			op.Address = cursor
			extra := op.Extra
			if needExt[n] {
				extra = 1
			}
			cursor += uint32(1 + extra)
		}

		for n := range asm.Opcodes {
			op := &asm.Opcodes[n]
			if op.Imm == nil || op.Imm.Kind != SYMBOL_LABEL || needExt[n] {
				continue
			}
			target := asm.indexAddress(op.Imm.Index, cursor)
			if target >= InlineMask(op.ImmSlot()) {
				needExt[n] = true
				changed = true
			}
		}
	}

	for n := range asm.Opcodes {
		op := &asm.Opcodes[n]
		if op.Imm == nil || op.Imm.Kind != SYMBOL_LABEL {
			continue
		}
		target := asm.indexAddress(op.Imm.Index, cursor)
		if needExt[n] {
			op.Extra = 1
			op.Ext = Word(target)
			op.Inline = InlineMask(op.ImmSlot())
		} else {
			op.Inline = target
		}
	}

	// Every label now names its final word-stream address.
	for _, sym := range asm.Symbols {
		if sym.Kind == SYMBOL_LABEL {
			sym.Value = Word(asm.indexAddress(sym.Index, cursor))
		}
	}

	// Pass C: ISR rewriting. Patch each stub's inline immediate to its
	// replacement handler.
	for _, isr := range asm.Isrs {
		asm.patchIsr(isr)
	}

	main, ok := asm.Symbols["main"]
	if !ok || main.Kind != SYMBOL_LABEL {
		asm.failProgram(ErrNoMain)
	}

	if asm.MemorySize > 0 && 4*len(asm.Data) > asm.MemorySize {
		asm.failProgram(ErrDataTooBig)
	}

	if len(asm.errs) != 0 {
		err = errors.Join(asm.errs...)
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcodes),
		Symbols: maps.Clone(asm.Symbols),
	}

	for _, op := range asm.Opcodes {
		code := MakeCode(op.Cond, op.Op, op.Regs...)
		if op.Imm != nil {
			code = code.WithInline(op.ImmSlot(), op.Inline)
		}
		prog.Code = append(prog.Code, code)
		if op.Extra != 0 {
			prog.Code = append(prog.Code, Code(op.Ext))
		}
	}

	for _, value := range asm.Data {
		bytes := value.Bytes()
		prog.Data = append(prog.Data, bytes[:]...)
	}

	if asm.Verbose {
		log.Printf("generated %d words, %d data bytes", len(prog.Code), len(prog.Data))
	}

	return
}

// indexAddress returns the word-stream address of an instruction index;
// an index one past the end names the stream length.
func (asm *Assembler) indexAddress(index int, total uint32) uint32 {
	if index >= len(asm.Opcodes) {
		return total
	}
	return asm.Opcodes[index].Address
}

// patchIsr rewrites the inline immediate of the instruction at the
// target label so control jumps to the replacement label instead.
func (asm *Assembler) patchIsr(isr IsrPatch) {
	target, ok := asm.Symbols[isr.Target]
	if !ok {
		asm.fail(isr.LineNo, isr.Target, ErrSymbolMissing(isr.Target))
		return
	}
	repl, ok := asm.Symbols[isr.Replacement]
	if !ok {
		asm.fail(isr.LineNo, isr.Replacement, ErrSymbolMissing(isr.Replacement))
		return
	}
	if target.Kind != SYMBOL_LABEL || repl.Kind != SYMBOL_LABEL {
		asm.fail(isr.LineNo, isr.Target, ErrIsrTarget)
		return
	}
	if target.Index >= len(asm.Opcodes) {
		asm.fail(isr.LineNo, isr.Target, ErrIsrNoImmediate)
		return
	}

	op := &asm.Opcodes[target.Index]
	if op.Imm == nil {
		asm.fail(isr.LineNo, isr.Target, ErrIsrNoImmediate)
		return
	}
	if op.Extra != 0 {
		asm.fail(isr.LineNo, isr.Target, ErrIsrStubTooLarge)
		return
	}
	if repl.Value.Uint() >= InlineMask(op.ImmSlot()) {
		asm.fail(isr.LineNo, isr.Replacement, ErrIsrStubTooFar)
		return
	}

	op.Inline = repl.Value.Uint()
}
