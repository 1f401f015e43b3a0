package io

import (
	"iter"
	"maps"
)

// Timer register offsets, relative to the device base.
const (
	TIMER_COUNT  = uint32(0x0) // Read/write: remaining ticks.
	TIMER_VECTOR = uint32(0x4) // Read/write: interrupt target address.
	TIMER_CTRL   = uint32(0x8) // Read/write: bit 0 enables the countdown.

	TIMER_CTRL_ENABLE = uint32(1 << 0)
)

var _timer_defines = map[string]string{
	"TIMER_COUNT":  "0x0",
	"TIMER_VECTOR": "0x4",
	"TIMER_CTRL":   "0x8",
}

// Timer is a programmable down-counter. The host advances it with Tick;
// when the count reaches zero while enabled, the timer disables itself and
// raises an interrupt through Notify with the programmed vector. Notify is
// normally wired to the CPU's interrupt entry point.
type Timer struct {
	Base   uint32
	Notify func(target uint32) bool

	Count  uint32
	Vector uint32
	Ctrl   uint32
}

var _ Peripheral = (*Timer)(nil)

// Defines returns an iter of defines for the device.
func (tm *Timer) Defines() iter.Seq2[string, string] {
	return maps.All(_timer_defines)
}

// Reset clears the counter, vector, and control registers.
func (tm *Timer) Reset() {
	tm.Count = 0
	tm.Vector = 0
	tm.Ctrl = 0
}

// Tick advances the timer by n host ticks. Returns true if the timer
// expired on this call; the interrupt then goes to Notify, if set, and
// Notify's result is not checked.
func (tm *Timer) Tick(n uint32) (fired bool) {
	if (tm.Ctrl & TIMER_CTRL_ENABLE) == 0 {
		return
	}

	if tm.Count > n {
		tm.Count -= n
		return
	}

	tm.Count = 0
	tm.Ctrl &^= TIMER_CTRL_ENABLE
	fired = true
	if tm.Notify != nil {
		tm.Notify(tm.Vector)
	}

	return
}

func (tm *Timer) Read(addr uint32) (value uint32) {
	switch addr - tm.Base {
	case TIMER_COUNT:
		value = tm.Count
	case TIMER_VECTOR:
		value = tm.Vector
	case TIMER_CTRL:
		value = tm.Ctrl
	}
	return
}

func (tm *Timer) Write(addr uint32, value uint32) {
	switch addr - tm.Base {
	case TIMER_COUNT:
		tm.Count = value
	case TIMER_VECTOR:
		tm.Vector = value
	case TIMER_CTRL:
		tm.Ctrl = value
	}
}
