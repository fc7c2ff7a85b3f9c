package cpu

import (
	"fmt"
)

// Opcode is an instruction opcode byte.
type Opcode uint8

const (
	OP_NOP     = Opcode(0x00)
	OP_LDA_IMM = Opcode(0x01)
	OP_LDA_DIR = Opcode(0x02)
	OP_STA_IMM = Opcode(0x03)
	OP_STA_DIR = Opcode(0x04)
	OP_ADD_IMM = Opcode(0x05)
	OP_ADD_DIR = Opcode(0x06)
	OP_SUB_IMM = Opcode(0x07)
	OP_SUB_DIR = Opcode(0x08)
	OP_AND_IMM = Opcode(0x09)
	OP_AND_DIR = Opcode(0x0A)
	OP_OR_IMM  = Opcode(0x0B)
	OP_OR_DIR  = Opcode(0x0C)
	OP_XOR_IMM = Opcode(0x0D)
	OP_XOR_DIR = Opcode(0x0E)
	OP_LSL_IMM = Opcode(0x0F)
	OP_LSL_DIR = Opcode(0x10)
	OP_LSR_IMM = Opcode(0x11)
	OP_LSR_DIR = Opcode(0x12)
	OP_ASL_IMM = Opcode(0x13)
	OP_ASL_DIR = Opcode(0x14)
	OP_ASR_IMM = Opcode(0x15)
	OP_ASR_DIR = Opcode(0x16)
	OP_RSL_IMM = Opcode(0x17)
	OP_RSL_DIR = Opcode(0x18)
	OP_RSR_IMM = Opcode(0x19)
	OP_RSR_DIR = Opcode(0x1A)
	OP_JMP_IMM = Opcode(0x1B)
	OP_JMP_DIR = Opcode(0x1C)
	OP_BNE_IMM = Opcode(0x1D)
	OP_BNE_DIR = Opcode(0x1E)
	OP_BEQ_IMM = Opcode(0x1F)
	OP_BEQ_DIR = Opcode(0x20)
	OP_BPL_IMM = Opcode(0x21)
	OP_BPL_DIR = Opcode(0x22)
	OP_BMI_IMM = Opcode(0x23)
	OP_BMI_DIR = Opcode(0x24)

	OP_LAST = OP_BMI_DIR // Highest defined opcode.
)

// OpClass is the instruction class of an opcode.
type OpClass int

//go:generate go tool stringer -linecomment -type=OpClass
const (
	CLASS_NOP     = OpClass(0) // nop
	CLASS_LDA     = OpClass(1) // lda
	CLASS_STA     = OpClass(2) // sta
	CLASS_ALU     = OpClass(3) // alu
	CLASS_JMP     = OpClass(4) // jmp
	CLASS_BNE     = OpClass(5) // bne
	CLASS_BEQ     = OpClass(6) // beq
	CLASS_BPL     = OpClass(7) // bpl
	CLASS_BMI     = OpClass(8) // bmi
	CLASS_ILLEGAL = OpClass(9) // illegal
)

// Branch returns true for the conditional branch classes.
func (class OpClass) Branch() bool {
	return class >= CLASS_BNE && class <= CLASS_BMI
}

// AddrMode is the operand addressing mode of an opcode.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	MODE_NONE = AddrMode(0) // -
	MODE_IMM  = AddrMode(1) // imm
	MODE_DIR  = AddrMode(2) // dir
)

// Valid returns true if the opcode is defined.
func (op Opcode) Valid() bool {
	return op <= OP_LAST
}

// Class returns the instruction class of the opcode.
func (op Opcode) Class() OpClass {
	switch {
	case op == OP_NOP:
		return CLASS_NOP
	case op <= OP_LDA_DIR:
		return CLASS_LDA
	case op <= OP_STA_DIR:
		return CLASS_STA
	case op <= OP_RSR_DIR:
		return CLASS_ALU
	case op <= OP_JMP_DIR:
		return CLASS_JMP
	case op <= OP_BNE_DIR:
		return CLASS_BNE
	case op <= OP_BEQ_DIR:
		return CLASS_BEQ
	case op <= OP_BPL_DIR:
		return CLASS_BPL
	case op <= OP_BMI_DIR:
		return CLASS_BMI
	}

	return CLASS_ILLEGAL
}

// Mode returns the addressing mode of the opcode.
// Immediate forms are odd, direct forms are even.
func (op Opcode) Mode() AddrMode {
	if op == OP_NOP || !op.Valid() {
		return MODE_NONE
	}

	if (op & 1) == 1 {
		return MODE_IMM
	}

	return MODE_DIR
}

// AluOp returns the ALU operation selected by an ALU class opcode.
func (op Opcode) AluOp() (alu AluOp, ok bool) {
	if op.Class() != CLASS_ALU {
		return
	}

	return AluOp((op - OP_ADD_IMM) >> 1), true
}

// Taken returns true if a jump or branch opcode transfers control, given
// the current condition codes. All other opcodes are never taken.
func (op Opcode) Taken(ccr Ccr) bool {
	switch op.Class() {
	case CLASS_JMP:
		return true
	case CLASS_BNE:
		return !ccr.Zero
	case CLASS_BEQ:
		return ccr.Zero
	case CLASS_BPL:
		return !ccr.Negative
	case CLASS_BMI:
		return ccr.Negative
	}

	return false
}

// MakeOpcode builds an opcode from its class, addressing mode, and ALU
// operation (only used for CLASS_ALU).
func MakeOpcode(class OpClass, mode AddrMode, alu AluOp) (op Opcode, ok bool) {
	var base Opcode

	switch class {
	case CLASS_NOP:
		return OP_NOP, mode == MODE_NONE
	case CLASS_LDA:
		base = OP_LDA_IMM
	case CLASS_STA:
		base = OP_STA_IMM
	case CLASS_ALU:
		if alu < ALU_OP_ADD || alu > ALU_OP_RSR {
			return
		}
		base = OP_ADD_IMM + Opcode(alu)*2
	case CLASS_JMP:
		base = OP_JMP_IMM
	case CLASS_BNE:
		base = OP_BNE_IMM
	case CLASS_BEQ:
		base = OP_BEQ_IMM
	case CLASS_BPL:
		base = OP_BPL_IMM
	case CLASS_BMI:
		base = OP_BMI_IMM
	default:
		return
	}

	switch mode {
	case MODE_IMM:
		op = base
	case MODE_DIR:
		op = base + 1
	default:
		return
	}

	ok = true
	return
}

// Mnemonic returns the assembly mnemonic of the opcode.
func (op Opcode) Mnemonic() string {
	class := op.Class()
	if alu, ok := op.AluOp(); ok {
		return alu.String()
	}

	return class.String()
}

// String returns the opcode as 'mnemonic.mode', or 'illegal.0xNN'.
func (op Opcode) String() string {
	switch {
	case op == OP_NOP:
		return "nop"
	case !op.Valid():
		return fmt.Sprintf("illegal.0x%02x", uint8(op))
	}

	return fmt.Sprintf("%v.%v", op.Mnemonic(), op.Mode())
}

// Code is a single instruction word: the opcode and its operand byte, held
// at a single program counter location.
type Code struct {
	Op      Opcode
	Operand uint8
}

// MakeCode decodes an instruction word.
func MakeCode(word uint16) Code {
	return Code{Op: Opcode(word >> 8), Operand: uint8(word)}
}

// Word returns the 16-bit instruction word, opcode in the upper byte.
func (code Code) Word() uint16 {
	return (uint16(code.Op) << 8) | uint16(code.Operand)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	switch code.Op.Mode() {
	case MODE_IMM:
		return fmt.Sprintf("%v #0x%02x", code.Op.Mnemonic(), code.Operand)
	case MODE_DIR:
		return fmt.Sprintf("%v 0x%02x", code.Op.Mnemonic(), code.Operand)
	}

	return code.Op.String()
}
