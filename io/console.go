package io

import (
	"io"
	"iter"
	"maps"
)

// Console register offsets, relative to the device base.
const (
	CONSOLE_TX     = uint32(0x0) // Write: transmit low byte to Output.
	CONSOLE_RX     = uint32(0x4) // Read: next input byte, or CONSOLE_NO_DATA.
	CONSOLE_STATUS = uint32(0x8) // Read: bit 0 set while input is available.

	CONSOLE_NO_DATA = ^uint32(0) // RX value when the input is exhausted.
)

var _console_defines = map[string]string{
	"CONSOLE_TX":     "0x0",
	"CONSOLE_RX":     "0x4",
	"CONSOLE_STATUS": "0x8",
}

// Console provides byte-stream I/O through three memory-mapped registers.
// It wraps an io.Reader for input and an io.Writer for output. A write to
// CONSOLE_TX emits the low byte of the stored word; a read of CONSOLE_RX
// consumes one input byte, widened to a word.
type Console struct {
	Base   uint32
	Input  io.Reader
	Output io.Writer

	Err error // Sticky output error, if any.

	hasInput  bool
	lastInput byte
}

var _ Peripheral = (*Console)(nil)

// Defines returns an iter of defines for the device.
func (con *Console) Defines() iter.Seq2[string, string] {
	return maps.All(_console_defines)
}

// Reset clears the input lookahead and the sticky error.
func (con *Console) Reset() {
	con.hasInput = false
	con.lastInput = 0
	con.Err = nil
}

// fill pulls one byte of lookahead from the input.
func (con *Console) fill() {
	if con.hasInput || con.Input == nil {
		return
	}

	var one [1]byte
	_, err := con.Input.Read(one[:])
	if err != nil {
		return
	}
	con.lastInput = one[0]
	con.hasInput = true
}

func (con *Console) Read(addr uint32) (value uint32) {
	switch addr - con.Base {
	case CONSOLE_RX:
		con.fill()
		if !con.hasInput {
			value = CONSOLE_NO_DATA
			return
		}
		value = uint32(con.lastInput)
		con.hasInput = false
	case CONSOLE_STATUS:
		con.fill()
		if con.hasInput {
			value = 1
		}
	}

	return
}

func (con *Console) Write(addr uint32, value uint32) {
	switch addr - con.Base {
	case CONSOLE_TX:
		if con.Output == nil {
			return
		}
		_, err := con.Output.Write([]byte{byte(value)})
		if err != nil && con.Err == nil {
			con.Err = ErrConsoleOutput
		}
	}
}
