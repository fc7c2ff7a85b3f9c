package io

import (
	"fmt"
	"iter"
	"maps"
)

// Word is an instruction word: an opcode and its operand byte.
type Word struct {
	Opcode  uint8
	Operand uint8
}

// Rom holds the program as instruction words indexed by program counter.
// The opcode is the upper byte of a word, the operand the lower byte.
type Rom struct {
	Data []uint16
}

// Defines returns an iter of defines for the ROM.
func (rom *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%v", ADDR_SIZE),
	})
}

// Fetch returns the instruction word at a program counter. Locations past
// the end of the program read as zero, a NOP, and ok is false.
func (rom *Rom) Fetch(pc uint8) (word Word, ok bool) {
	pc &= ADDR_MASK
	if int(pc) >= len(rom.Data) {
		return
	}

	data := rom.Data[pc]
	word = Word{
		Opcode:  uint8(data >> 8),
		Operand: uint8(data),
	}
	ok = true

	return
}

// Len returns the number of instruction words in the ROM.
func (rom *Rom) Len() int {
	return len(rom.Data)
}
