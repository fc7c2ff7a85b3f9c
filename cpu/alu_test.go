package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAluApply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       AluOp
		lhs, rhs uint8
		result   uint8
		zero     bool
		negative bool
	}){
		{ALU_OP_ADD, 0x7f, 0x01, 0x80, false, true},
		{ALU_OP_ADD, 0xff, 0x01, 0x00, true, false},
		{ALU_OP_ADD, 0x12, 0x34, 0x46, false, false},
		{ALU_OP_SUB, 0x05, 0x05, 0x00, true, false},
		{ALU_OP_SUB, 0x00, 0x01, 0xff, false, true},
		{ALU_OP_AND, 0xf0, 0x0f, 0x00, true, false},
		{ALU_OP_AND, 0xf3, 0x3f, 0x33, false, false},
		{ALU_OP_OR, 0xf0, 0x0f, 0xff, false, true},
		{ALU_OP_XOR, 0xaa, 0xaa, 0x00, true, false},
		{ALU_OP_XOR, 0xaa, 0x55, 0xff, false, true},
		{ALU_OP_LSL, 0x81, 0x01, 0x02, false, false},
		{ALU_OP_LSL, 0x01, 0x08, 0x00, true, false},
		{ALU_OP_LSR, 0x80, 0x07, 0x01, false, false},
		{ALU_OP_LSR, 0xff, 0x08, 0x00, true, false},
		{ALU_OP_ASL, 0x40, 0x01, 0x80, false, true},
		{ALU_OP_ASR, 0x80, 0x01, 0xc0, false, true},
		{ALU_OP_ASR, 0x80, 0x09, 0xff, false, true},
		{ALU_OP_ASR, 0x40, 0x01, 0x20, false, false},
		{ALU_OP_ASR, 0x40, 0xff, 0x00, true, false},
		{ALU_OP_RSL, 0x81, 0x01, 0x03, false, false},
		{ALU_OP_RSL, 0x81, 0xff, 0xc0, false, true},
		{ALU_OP_RSL, 0x81, 0x08, 0x81, false, true},
		{ALU_OP_RSR, 0x81, 0x01, 0xc0, false, true},
		{ALU_OP_RSR, 0x03, 0xff, 0x06, false, false},
		{ALU_OP_RSR, 0x00, 0x03, 0x00, true, false},
	}

	for _, entry := range table {
		result, zero, negative := entry.op.Apply(entry.lhs, entry.rhs)
		assert.Equal(entry.result, result, "%v %02x %02x", entry.op, entry.lhs, entry.rhs)
		assert.Equal(entry.zero, zero, "%v %02x %02x", entry.op, entry.lhs, entry.rhs)
		assert.Equal(entry.negative, negative, "%v %02x %02x", entry.op, entry.lhs, entry.rhs)
	}
}

func TestAluString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", ALU_OP_ADD.String())
	assert.Equal("rsr", ALU_OP_RSR.String())
	assert.Equal("AluOp(11)", AluOp(11).String())
}

// aluReference computes ALU results with integer arithmetic.
func aluReference(op AluOp, lhs, rhs uint8) (result uint8) {
	a, b := int(lhs), int(rhs)
	rot := ((int(int8(rhs)) % 8) + 8) % 8

	switch op {
	case ALU_OP_ADD:
		result = uint8((a + b) & 0xff)
	case ALU_OP_SUB:
		result = uint8((a - b + 0x100) & 0xff)
	case ALU_OP_AND:
		result = uint8(a & b)
	case ALU_OP_OR:
		result = uint8(a | b)
	case ALU_OP_XOR:
		result = uint8(a ^ b)
	case ALU_OP_LSL, ALU_OP_ASL:
		if b < 8 {
			result = uint8((a << b) & 0xff)
		}
	case ALU_OP_LSR:
		if b < 8 {
			result = uint8(a >> b)
		}
	case ALU_OP_ASR:
		s := min(b, 7)
		result = uint8(int(int8(lhs)) >> s)
	case ALU_OP_RSL:
		result = uint8(((a << rot) | (a >> (8 - rot))) & 0xff)
	case ALU_OP_RSR:
		result = uint8(((a >> rot) | (a << (8 - rot))) & 0xff)
	}

	return
}

func FuzzAlu(f *testing.F) {
	for op := ALU_OP_ADD; op <= ALU_OP_RSR; op++ {
		f.Add(uint8(op), uint8(0), uint8(0))
		f.Add(uint8(op), uint8(0x80), uint8(0x01))
		f.Add(uint8(op), uint8(0xff), uint8(0xff))
		f.Add(uint8(op), uint8(0x5a), uint8(0x83))
	}

	f.Fuzz(func(t *testing.T, opv uint8, lhs uint8, rhs uint8) {
		assert := assert.New(t)

		op := AluOp(opv % uint8(ALU_OP_RSR+1))

		expected := aluReference(op, lhs, rhs)
		result, zero, negative := op.Apply(lhs, rhs)

		assert.Equal(expected, result, "%v %02x %02x", op, lhs, rhs)
		assert.Equal(expected == 0, zero)
		assert.Equal(expected >= 0x80, negative)
	})
}
