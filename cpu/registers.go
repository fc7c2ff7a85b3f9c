package cpu

import (
	"fmt"
	"math/bits"
)

const (
	PC_MASK = 0x7f // Program counter and address width.
	WE_BIT  = 0x80 // Write enable bit of the address port.
)

// Ccr is the condition code register.
type Ccr struct {
	Zero     bool // Last ALU result was zero.
	Negative bool // Bit 7 of the last ALU result was set.
}

// Pack returns the CCR as a byte: bit 0 is N, bit 1 is Z.
func (ccr Ccr) Pack() (value uint8) {
	if ccr.Negative {
		value |= 1 << 0
	}
	if ccr.Zero {
		value |= 1 << 1
	}
	return
}

// String returns the flags as "zn", with '-' for a clear flag.
func (ccr Ccr) String() string {
	z, n := '-', '-'
	if ccr.Zero {
		z = 'z'
	}
	if ccr.Negative {
		n = 'n'
	}
	return fmt.Sprintf("%c%c", z, n)
}

// Registers is the register file of the core.
type Registers struct {
	Pc  uint8 // Program counter, 7 bits.
	A   uint8 // Accumulator.
	Ir  uint8 // Instruction register.
	M   uint8 // Memory operand latch.
	Ccr Ccr   // Condition codes.
}

// Reset zeros every register.
func (reg *Registers) Reset() {
	*reg = Registers{}
}

// SetPc sets the program counter, discarding the upper bit.
func (reg *Registers) SetPc(value uint8) {
	reg.Pc = value & PC_MASK
}

// IncPc advances the program counter, wrapping modulo 128.
func (reg *Registers) IncPc() {
	reg.SetPc(reg.Pc + 1)
}

// LoadA writes the accumulator from a load. The condition codes are not
// touched. Returns the number of accumulator bits flipped.
func (reg *Registers) LoadA(value uint8) (flipped int) {
	flipped = bits.OnesCount8(reg.A ^ value)
	reg.A = value
	return
}

// WriteAlu writes an ALU result to the accumulator, and its flags to the
// condition codes. Returns the number of accumulator bits flipped.
func (reg *Registers) WriteAlu(result uint8, zero, negative bool) (flipped int) {
	flipped = reg.LoadA(result)
	reg.Ccr = Ccr{Zero: zero, Negative: negative}
	return
}
