package io

import (
	"fmt"
	"iter"
	"maps"
)

// Ram is the data memory. Reset reloads it from Image.
type Ram struct {
	Image []uint8 // Initial contents, from address 0.

	Data [ADDR_SIZE]uint8
}

var _ Device = (*Ram)(nil)

// Defines returns an iter of defines for the RAM.
func (ram *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"RAM_SIZE": fmt.Sprintf("%v", ADDR_SIZE),
	})
}

// Reset reloads the initial contents, zeroing the rest.
func (ram *Ram) Reset() {
	clear(ram.Data[:])
	copy(ram.Data[:], ram.Image)
}

// Load returns the byte at an address.
func (ram *Ram) Load(addr uint8) uint8 {
	return ram.Data[addr&ADDR_MASK]
}

// Store writes the byte at an address.
func (ram *Ram) Store(addr uint8, value uint8) (err error) {
	ram.Data[addr&ADDR_MASK] = value
	return
}
