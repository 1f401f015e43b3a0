// Package emulator wires the embervm CPU to its memory-mapped peripherals
// and drives assembled programs through them.
package emulator

import (
	"fmt"
	stdio "io"
	"iter"
	"maps"

	"github.com/embervm/embervm/cpu"
	"github.com/embervm/embervm/internal"
	"github.com/embervm/embervm/io"
)

const (
	MEMORY_SIZE     = 4096                // Default memory size in bytes.
	PERIPHERAL_BASE = uint32(0x8000_0000) // Default peripheral window base.

	// Device offsets within the peripheral window.
	CONSOLE_OFFSET = uint32(0x000)
	TIMER_OFFSET   = uint32(0x100)
	BANK_OFFSET    = uint32(0x200)
	DEVICE_SIZE    = uint32(0x100)
)

// Machine is the emulator state: CPU plus the peripheral window devices.
// Accesses to the window that miss every mapped device land on the Probe.
type Machine struct {
	Verbose bool         // If set, enables verbose logging.
	Cpu     *cpu.Cpu     // The processor.
	Program *cpu.Program // The currently loaded program listing.

	Console io.Console // Byte-stream console device.
	Timer   io.Timer   // Host-driven interrupt timer.
	Bank    io.Bank    // Scratch RAM window.
	Probe   io.Probe   // Fallback access recorder.
	Mux     io.Mux     // Window router.
}

// NewMachine creates a machine with the given memory size and peripheral
// window base address.
func NewMachine(memSize int, base uint32) (mac *Machine) {
	mac = &Machine{}

	mac.Console.Base = base + CONSOLE_OFFSET
	mac.Timer.Base = base + TIMER_OFFSET
	mac.Bank.Base = base + BANK_OFFSET

	mac.Mux.Map(mac.Console.Base, DEVICE_SIZE, &mac.Console)
	mac.Mux.Map(mac.Timer.Base, DEVICE_SIZE, &mac.Timer)
	mac.Mux.Map(mac.Bank.Base, DEVICE_SIZE, &mac.Bank)
	mac.Mux.Fallback = &mac.Probe

	mac.Cpu = cpu.NewCpu(memSize, base, &mac.Mux)
	mac.Timer.Notify = mac.Cpu.Interrupt

	return
}

// Defines returns an iterator over all of the defines: the machine's
// geometry, the CPU's constants, and every device's register offsets.
// The assembler receives these as predefined constants.
func (mac *Machine) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MEMORY_SIZE":     fmt.Sprintf("%v", mac.Cpu.Mem.Size()),
		"PERIPHERAL_BASE": fmt.Sprintf("%#x", mac.Cpu.Mem.Base),
		"CONSOLE_BASE":    fmt.Sprintf("%#x", mac.Console.Base),
		"TIMER_BASE":      fmt.Sprintf("%#x", mac.Timer.Base),
		"BANK_BASE":       fmt.Sprintf("%#x", mac.Bank.Base),
	}

	return internal.IterSeq2Concat(maps.All(defines),
		mac.Cpu.Defines(),
		mac.Mux.Defines(),
	)
}

// Assemble compiles assembly source into the machine's program slot. The
// machine's defines are predefined as constants for the source.
func (mac *Machine) Assemble(input stdio.Reader) (err error) {
	asm := &cpu.Assembler{
		Verbose:    mac.Verbose,
		MemorySize: mac.Cpu.Mem.Size(),
	}
	for name, value := range mac.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Assemble(input)
	if err != nil {
		return
	}

	mac.Program = prog
	return
}

// Reset resets the CPU and every device, then reloads the program.
func (mac *Machine) Reset() (err error) {
	mac.Cpu.Verbose = mac.Verbose
	mac.Cpu.Reset()
	mac.Console.Reset()
	mac.Timer.Reset()
	mac.Bank.Reset()
	mac.Probe.Reset()

	if mac.Program != nil {
		err = mac.Cpu.Load(mac.Program)
	}

	return
}

// Entry returns the word-stream address of a label in the loaded program.
func (mac *Machine) Entry(name string) (addr uint32, ok bool) {
	if mac.Program == nil {
		return
	}

	return mac.Program.Entry(name)
}

// LineNo returns the source line of the most recently fetched instruction:
// the one whose word, or extension word, sits just below the program
// counter.
func (mac *Machine) LineNo() int {
	if mac.Program == nil {
		return 0
	}

	pc := mac.Cpu.Pc
	if pc > uint32(len(mac.Cpu.Code)) {
		pc = uint32(len(mac.Cpu.Code))
	}
	if pc == 0 {
		return 0
	}

	dbg := mac.Program.Debug(pc - 1)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Run executes up to budget instructions. Trap statuses come back as an
// ErrRuntime locating the faulting source line; SUCCESS and the ordinary
// end-of-stream status do not.
func (mac *Machine) Run(budget int) (status cpu.Status, err error) {
	mac.Cpu.Verbose = mac.Verbose

	status, _ = mac.Cpu.Cycle(budget)
	if status.Trap() {
		err = &ErrRuntime{LineNo: mac.LineNo(), Status: status}
	}

	return
}
