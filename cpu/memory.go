package cpu

import (
	"github.com/embervm/embervm/io"
)

// Peripheral is a memory-mapped device window.
type Peripheral io.Peripheral

// Memory is a linear byte vector with a peripheral window above Base.
// Accesses at or above Base are routed to the peripheral; accesses below
// must fit the byte vector. Word access is little-endian and unaligned
// addresses are permitted.
type Memory struct {
	Data []byte
	Base uint32
	Dev  Peripheral
}

// NewMemory creates a memory of the given byte size with a peripheral
// window starting at base.
func NewMemory(size int, base uint32, dev Peripheral) (mem *Memory) {
	mem = &Memory{
		Data: make([]byte, size),
		Base: base,
		Dev:  dev,
	}

	return
}

// Reset zeroes the byte vector.
func (mem *Memory) Reset() {
	clear(mem.Data)
}

// Size returns the byte size of the memory vector.
func (mem *Memory) Size() int {
	return len(mem.Data)
}

// contains reports whether count bytes at addr fit the byte vector.
func (mem *Memory) contains(addr uint32, count int) bool {
	return uint64(addr)+uint64(count) <= uint64(len(mem.Data))
}

// ReadWord returns the little-endian word at addr. Out-of-range reads
// return zero alongside ErrSegfault; the caller latches the fault.
func (mem *Memory) ReadWord(addr uint32) (value Word, err error) {
	if addr >= mem.Base {
		if mem.Dev != nil {
			value = Word(mem.Dev.Read(addr))
		}
		return
	}

	if !mem.contains(addr, 4) {
		err = ErrSegfault
		return
	}

	value = WordFromBytes(mem.Data[addr], mem.Data[addr+1], mem.Data[addr+2], mem.Data[addr+3])
	return
}

// WriteWord stores the little-endian word at addr.
func (mem *Memory) WriteWord(addr uint32, value Word) (err error) {
	if addr >= mem.Base {
		if mem.Dev != nil {
			mem.Dev.Write(addr, value.Uint())
		}
		return
	}

	if !mem.contains(addr, 4) {
		err = ErrSegfault
		return
	}

	bytes := value.Bytes()
	copy(mem.Data[addr:], bytes[:])
	return
}

// ReadByte returns the byte at addr. A peripheral route is a full word
// access; the low byte is returned.
func (mem *Memory) ReadByte(addr uint32) (value byte, err error) {
	if addr >= mem.Base {
		if mem.Dev != nil {
			value = byte(mem.Dev.Read(addr))
		}
		return
	}

	if !mem.contains(addr, 1) {
		err = ErrSegfault
		return
	}

	value = mem.Data[addr]
	return
}

// WriteByte stores a byte at addr. A peripheral route is a full word
// access with zero upper bytes.
func (mem *Memory) WriteByte(addr uint32, value byte) (err error) {
	if addr >= mem.Base {
		if mem.Dev != nil {
			mem.Dev.Write(addr, uint32(value))
		}
		return
	}

	if !mem.contains(addr, 1) {
		err = ErrSegfault
		return
	}

	mem.Data[addr] = value
	return
}
