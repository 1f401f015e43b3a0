package io

import (
	"iter"
	"maps"
)

const (
	BANK_DEFAULT_WORDS = 64
)

// Bank is a scratch RAM window of word-addressed storage. Accesses outside
// the bank's capacity wrap around, so a program can treat it as a small
// circular buffer shared with the host.
type Bank struct {
	Base  uint32
	Words int // Capacity in words; BANK_DEFAULT_WORDS if zero.

	Data []uint32
}

var _ Peripheral = (*Bank)(nil)

// Defines returns an iter of defines for the device.
func (bank *Bank) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Reset reinitializes the storage to zero.
func (bank *Bank) Reset() {
	if bank.Words == 0 {
		bank.Words = BANK_DEFAULT_WORDS
	}
	bank.Data = make([]uint32, bank.Words)
}

func (bank *Bank) slot(addr uint32) int {
	if bank.Data == nil {
		bank.Reset()
	}
	return int((addr - bank.Base) / 4 % uint32(len(bank.Data)))
}

func (bank *Bank) Read(addr uint32) uint32 {
	return bank.Data[bank.slot(addr)]
}

func (bank *Bank) Write(addr uint32, value uint32) {
	bank.Data[bank.slot(addr)] = value
}
