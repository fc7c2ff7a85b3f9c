package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

const (
	TAPE_IN  = 0x7e // Load reads the next input byte.
	TAPE_OUT = 0x7f // Store writes an output byte.
)

// Tape provides sequential byte I/O through two data addresses.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Eof       bool  // Input is exhausted.
	lastInput uint8 // Last byte read.
}

var _ Device = (*Tape)(nil)

// Defines returns an iter of defines for the tape.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TAPE_IN":  fmt.Sprintf("0x%02x", TAPE_IN),
		"TAPE_OUT": fmt.Sprintf("0x%02x", TAPE_OUT),
	})
}

// Reset is not possible on a tape, but the end of input flag is cleared.
func (tc *Tape) Reset() {
	tc.Eof = false
	tc.lastInput = 0
}

// Load reads the next byte from the input at TAPE_IN. Once the input is
// exhausted, loads return zero and Eof is set. Loads from TAPE_OUT return
// the last byte read.
func (tc *Tape) Load(addr uint8) uint8 {
	if (addr & ADDR_MASK) != TAPE_IN {
		return tc.lastInput
	}

	if tc.Input == nil || tc.Eof {
		tc.Eof = true
		return 0
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Input, one[:])
	if err != nil {
		tc.Eof = true
		return 0
	}

	tc.lastInput = one[0]
	return tc.lastInput
}

// Store writes a byte to the output at TAPE_OUT. The output may be nil,
// in which case the byte is discarded.
func (tc *Tape) Store(addr uint8, value uint8) (err error) {
	if (addr & ADDR_MASK) != TAPE_OUT {
		err = ErrReadOnly
		return
	}

	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
