package cpu

import (
	"math/bits"
)

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0)  // add
	ALU_OP_SUB = AluOp(1)  // sub
	ALU_OP_AND = AluOp(2)  // and
	ALU_OP_OR  = AluOp(3)  // or
	ALU_OP_XOR = AluOp(4)  // xor
	ALU_OP_LSL = AluOp(5)  // lsl
	ALU_OP_LSR = AluOp(6)  // lsr
	ALU_OP_ASL = AluOp(7)  // asl
	ALU_OP_ASR = AluOp(8)  // asr
	ALU_OP_RSL = AluOp(9)  // rsl
	ALU_OP_RSR = AluOp(10) // rsr
)

// Apply performs the ALU operation on the accumulator (lhs) and the
// operand (rhs), returning the result and the flags it produces.
//
// Shift counts are the full unsigned operand: counts of 8 or more shift
// every bit out. Rotate counts are the operand read as a signed step,
// so a negative RSL count rotates right; RSR rotates by the negated step.
func (op AluOp) Apply(lhs, rhs uint8) (result uint8, zero, negative bool) {
	switch op {
	case ALU_OP_ADD:
		result = lhs + rhs
	case ALU_OP_SUB:
		result = lhs - rhs
	case ALU_OP_AND:
		result = lhs & rhs
	case ALU_OP_OR:
		result = lhs | rhs
	case ALU_OP_XOR:
		result = lhs ^ rhs
	case ALU_OP_LSL, ALU_OP_ASL:
		result = lhs << rhs
	case ALU_OP_LSR:
		result = lhs >> rhs
	case ALU_OP_ASR:
		result = uint8(int8(lhs) >> rhs)
	case ALU_OP_RSL:
		result = bits.RotateLeft8(lhs, int(int8(rhs)))
	case ALU_OP_RSR:
		result = bits.RotateLeft8(lhs, -int(int8(rhs)))
	}

	zero = result == 0
	negative = (result & 0x80) != 0

	return
}
