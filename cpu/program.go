package cpu

// Program is the output of the assembler: the parsed instructions with
// their assigned layout, the symbol table with final label addresses, the
// packed instruction word stream, and the initial data image.
type Program struct {
	Opcodes []Opcode
	Symbols map[string]*Symbol
	Code    []Code
	Data    []byte
}

// Debug locates an Opcode by word-stream address.
type Debug struct {
	*Opcode
	Ext bool // The address hit the extension word.
}

// Debug maps a word-stream address back to its source statement.
func (prog *Program) Debug(addr uint32) (dbg Debug) {
	for n := range prog.Opcodes {
		op := &prog.Opcodes[n]
		if addr >= op.Address && addr < op.Address+uint32(1+op.Extra) {
			dbg = Debug{
				Opcode: op,
				Ext:    addr != op.Address,
			}
			break
		}
	}

	return
}

// Entry returns the word-stream address of a label.
func (prog *Program) Entry(name string) (addr uint32, ok bool) {
	sym, found := prog.Symbols[name]
	if !found || sym.Kind != SYMBOL_LABEL {
		return
	}

	addr = sym.Value.Uint()
	ok = true
	return
}
