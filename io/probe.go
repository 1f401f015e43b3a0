package io

import (
	"iter"
	"maps"
)

// ProbeAccess records a single bus access observed by a Probe.
type ProbeAccess struct {
	Addr  uint32
	Value uint32
	Store bool // true for a write, false for a read
}

// Probe is a diagnostic peripheral that records every access made to it.
// Reads return the word most recently written to the same address, so a
// program can use the probe as plain backing store while a test inspects
// the access log.
type Probe struct {
	Accesses []ProbeAccess

	words map[uint32]uint32
}

var _ Peripheral = (*Probe)(nil)

// Defines returns an iter of defines for the device.
func (pb *Probe) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Reset discards the access log and all stored words.
func (pb *Probe) Reset() {
	pb.Accesses = nil
	pb.words = nil
}

func (pb *Probe) Read(addr uint32) (value uint32) {
	value = pb.words[addr]
	pb.Accesses = append(pb.Accesses, ProbeAccess{Addr: addr, Value: value})
	return
}

func (pb *Probe) Write(addr uint32, value uint32) {
	if pb.words == nil {
		pb.words = make(map[uint32]uint32, 16)
	}
	pb.words[addr] = value
	pb.Accesses = append(pb.Accesses, ProbeAccess{Addr: addr, Value: value, Store: true})
}

// Reads returns the number of recorded loads.
func (pb *Probe) Reads() (count int) {
	for _, access := range pb.Accesses {
		if !access.Store {
			count++
		}
	}
	return
}

// Writes returns the number of recorded stores.
func (pb *Probe) Writes() (count int) {
	for _, access := range pb.Accesses {
		if access.Store {
			count++
		}
	}
	return
}
