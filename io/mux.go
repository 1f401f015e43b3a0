package io

import (
	"iter"

	"github.com/embervm/embervm/internal"
)

type muxRegion struct {
	base  uint32
	limit uint32
	dev   Peripheral
}

// Mux routes address ranges within the peripheral window to multiple
// devices. Regions are matched in the order they were mapped; accesses
// that match no region fall through to Fallback, or read as zero and
// drop writes when no fallback is set.
type Mux struct {
	Fallback Peripheral

	regions []muxRegion
}

var _ Peripheral = (*Mux)(nil)

// Map attaches a device to the size bytes starting at base.
func (mux *Mux) Map(base uint32, size uint32, dev Peripheral) {
	mux.regions = append(mux.regions, muxRegion{base: base, limit: base + size, dev: dev})
}

// Defines returns the merged defines of every mapped device.
func (mux *Mux) Defines() iter.Seq2[string, string] {
	type definer interface {
		Defines() iter.Seq2[string, string]
	}

	var seqs []iter.Seq2[string, string]
	for _, region := range mux.regions {
		dev, ok := region.dev.(definer)
		if ok {
			seqs = append(seqs, dev.Defines())
		}
	}

	return internal.IterSeq2Concat(seqs...)
}

func (mux *Mux) find(addr uint32) Peripheral {
	for _, region := range mux.regions {
		if addr >= region.base && addr < region.limit {
			return region.dev
		}
	}

	return mux.Fallback
}

func (mux *Mux) Read(addr uint32) (value uint32) {
	dev := mux.find(addr)
	if dev != nil {
		value = dev.Read(addr)
	}
	return
}

func (mux *Mux) Write(addr uint32, value uint32) {
	dev := mux.find(addr)
	if dev != nil {
		dev.Write(addr, value)
	}
}
