// Package io provides the devices on the external side of the accu8 pins.
// It includes the program ROM that supplies instruction words, the data RAM,
// and a memory mapped tape port for byte streams.
package io

import (
	"iter"
)

const (
	ADDR_SIZE = 128  // Size of the data address space.
	ADDR_MASK = 0x7f // Mask of a data address.
)

// Device defines the interface for a device on the data address space.
type Device interface {
	// Reset returns the device to its initial state.
	Reset()
	// Load returns the byte at an address.
	Load(addr uint8) uint8
	// Store writes a byte to an address.
	Store(addr uint8, value uint8) error
	// Defines returns the assembler predefines for the device.
	Defines() iter.Seq2[string, string]
}
