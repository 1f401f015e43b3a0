// Package io provides memory-mapped peripheral devices for the embervm
// machine. Any bus access at or above the peripheral base address is routed
// to a Peripheral instead of main memory. Devices include an access-recording
// probe (Probe), a byte-stream console (Console), a scratch RAM window (Bank),
// a host-driven interrupt timer (Timer), and a range multiplexer (Mux) that
// composes devices into a single window.
package io

// Peripheral is the bus-side interface of a memory-mapped device.
// Addresses are 32-bit byte addresses; values are full 32-bit words.
// A device behind a Mux receives the unmodified bus address and resolves
// its own register offsets against its Base.
type Peripheral interface {
	// Read returns the word at the given bus address.
	Read(addr uint32) uint32
	// Write stores a word at the given bus address.
	Write(addr uint32, value uint32)
}
