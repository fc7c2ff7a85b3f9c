package io

import (
	"iter"

	"github.com/ezrec/accu8/internal"
)

// Memory decodes the data address space onto the RAM and the tape port.
type Memory struct {
	Ram  Ram
	Tape Tape
}

var _ Device = (*Memory)(nil)

// device returns the device that decodes an address.
func (mem *Memory) device(addr uint8) Device {
	switch addr & ADDR_MASK {
	case TAPE_IN, TAPE_OUT:
		return &mem.Tape
	}
	return &mem.Ram
}

// Defines returns an iter of defines for all of the devices.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(mem.Ram.Defines(), mem.Tape.Defines())
}

// Reset resets all of the devices.
func (mem *Memory) Reset() {
	mem.Ram.Reset()
	mem.Tape.Reset()
}

// Load returns the byte at an address.
func (mem *Memory) Load(addr uint8) uint8 {
	return mem.device(addr).Load(addr)
}

// Store writes the byte at an address.
func (mem *Memory) Store(addr uint8, value uint8) error {
	return mem.device(addr).Store(addr, value)
}
