package cpu

import (
	"fmt"
)

// StateKind is a family of control unit micro-steps.
type StateKind int

//go:generate go tool stringer -linecomment -type=StateKind
const (
	STATE_RESET   = StateKind(0)  // reset
	STATE_FETCH   = StateKind(1)  // fetch
	STATE_DECODE  = StateKind(2)  // decode
	STATE_LDA_IMM = StateKind(3)  // lda.imm
	STATE_LDA_DIR = StateKind(4)  // lda.dir
	STATE_STA_IMM = StateKind(5)  // sta.imm
	STATE_STA_DIR = StateKind(6)  // sta.dir
	STATE_ALU_IMM = StateKind(7)  // alu.imm
	STATE_ALU_DIR = StateKind(8)  // alu.dir
	STATE_JMP_IMM = StateKind(9)  // jmp.imm
	STATE_JMP_DIR = StateKind(10) // jmp.dir
	STATE_PC_INC  = StateKind(11) // pc.inc
)

var _stateSteps = [...]uint8{
	STATE_RESET:   1,
	STATE_FETCH:   3,
	STATE_DECODE:  1,
	STATE_LDA_IMM: 2,
	STATE_LDA_DIR: 4,
	STATE_STA_IMM: 4,
	STATE_STA_DIR: 6,
	STATE_ALU_IMM: 2,
	STATE_ALU_DIR: 4,
	STATE_JMP_IMM: 2,
	STATE_JMP_DIR: 4,
	STATE_PC_INC:  1,
}

// _stateBase is the index of the first micro-step of each kind.
var _stateBase = func() (base [len(_stateSteps)]int) {
	var n int
	for kind, steps := range _stateSteps {
		base[kind] = n
		n += int(steps)
	}
	return
}()

// STATE_COUNT is the number of distinct micro-steps.
var STATE_COUNT = _stateBase[STATE_PC_INC] + int(_stateSteps[STATE_PC_INC])

// Steps returns the number of micro-steps in the family.
func (kind StateKind) Steps() int {
	if kind < 0 || int(kind) >= len(_stateSteps) {
		return 0
	}
	return int(_stateSteps[kind])
}

// Phase is what the control unit samples from the data bus on the clock
// edge that leaves a state.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_NONE    = Phase(0) // -
	PHASE_OPCODE  = Phase(1) // opcode
	PHASE_OPERAND = Phase(2) // operand
	PHASE_DATA    = Phase(3) // data
)

// ControlState is the active micro-step of the control unit.
type ControlState struct {
	Kind StateKind
	Step uint8
}

var (
	STATE_RESET_0  = ControlState{Kind: STATE_RESET}
	STATE_FETCH_0  = ControlState{Kind: STATE_FETCH}
	STATE_DECODE_0 = ControlState{Kind: STATE_DECODE}
	STATE_PC_INC_0 = ControlState{Kind: STATE_PC_INC}
)

// _execState maps an instruction class and addressing mode to the first
// execution micro-step family. Branches share the jump families.
var _execState = map[OpClass][3]StateKind{
	CLASS_LDA: {MODE_IMM: STATE_LDA_IMM, MODE_DIR: STATE_LDA_DIR},
	CLASS_STA: {MODE_IMM: STATE_STA_IMM, MODE_DIR: STATE_STA_DIR},
	CLASS_ALU: {MODE_IMM: STATE_ALU_IMM, MODE_DIR: STATE_ALU_DIR},
	CLASS_JMP: {MODE_IMM: STATE_JMP_IMM, MODE_DIR: STATE_JMP_DIR},
	CLASS_BNE: {MODE_IMM: STATE_JMP_IMM, MODE_DIR: STATE_JMP_DIR},
	CLASS_BEQ: {MODE_IMM: STATE_JMP_IMM, MODE_DIR: STATE_JMP_DIR},
	CLASS_BPL: {MODE_IMM: STATE_JMP_IMM, MODE_DIR: STATE_JMP_DIR},
	CLASS_BMI: {MODE_IMM: STATE_JMP_IMM, MODE_DIR: STATE_JMP_DIR},
}

// Next returns the micro-step that follows this one, given the latched
// opcode and the condition codes.
//
// NOP, undefined opcodes, and branches whose condition fails go straight
// from decode back to fetch.
func (state ControlState) Next(op Opcode, ccr Ccr) ControlState {
	switch state.Kind {
	case STATE_RESET, STATE_PC_INC:
		return STATE_FETCH_0
	case STATE_DECODE:
		class := op.Class()
		kinds, ok := _execState[class]
		if !ok || (class.Branch() && !op.Taken(ccr)) {
			return STATE_FETCH_0
		}
		return ControlState{Kind: kinds[op.Mode()]}
	}

	if int(state.Step)+1 < state.Kind.Steps() {
		return ControlState{Kind: state.Kind, Step: state.Step + 1}
	}

	switch state.Kind {
	case STATE_FETCH:
		return STATE_DECODE_0
	case STATE_JMP_IMM, STATE_JMP_DIR:
		return STATE_FETCH_0
	}

	return STATE_PC_INC_0
}

// Index returns the flat index of the micro-step, as shown by the debug
// output.
func (state ControlState) Index() int {
	if state.Kind < 0 || int(state.Kind) >= len(_stateBase) {
		return -1
	}
	return _stateBase[state.Kind] + int(state.Step)
}

// Phase returns what the edge leaving this micro-step samples from the bus.
func (state ControlState) Phase() Phase {
	switch state.Kind {
	case STATE_FETCH:
		if state.Step == 2 {
			return PHASE_OPCODE
		}
	case STATE_LDA_IMM, STATE_ALU_IMM, STATE_JMP_IMM, STATE_STA_IMM:
		if state.Step == 1 {
			return PHASE_OPERAND
		}
	case STATE_LDA_DIR, STATE_ALU_DIR, STATE_JMP_DIR, STATE_STA_DIR:
		switch state.Step {
		case 1:
			return PHASE_OPERAND
		case 3:
			return PHASE_DATA
		}
	}

	return PHASE_NONE
}

// UsesM returns true if the address port carries M, rather than PC.
func (state ControlState) UsesM() bool {
	switch state.Kind {
	case STATE_LDA_DIR, STATE_ALU_DIR, STATE_JMP_DIR, STATE_STA_IMM, STATE_STA_DIR:
		return state.Step >= 2
	}
	return false
}

// Drives returns true if the CPU owns the data bus in this micro-step.
// This is also the write enable cycle of a store.
func (state ControlState) Drives() bool {
	switch state.Kind {
	case STATE_STA_IMM:
		return state.Step == 3
	case STATE_STA_DIR:
		return state.Step == 5
	}
	return false
}

// Presents returns true if the CPU drives M on the data bus in this
// micro-step: the operand address phases of direct addressing and of stores.
// Write enable stays clear.
func (state ControlState) Presents() bool {
	switch state.Kind {
	case STATE_LDA_DIR, STATE_ALU_DIR, STATE_JMP_DIR, STATE_STA_IMM:
		return state.Step == 2
	case STATE_STA_DIR:
		return state.Step == 2 || state.Step == 4
	}
	return false
}

// String returns the state as 'kind.step', or just 'kind' for single step
// families.
func (state ControlState) String() string {
	if state.Kind.Steps() == 1 {
		return state.Kind.String()
	}
	return fmt.Sprintf("%v.%d", state.Kind, state.Step)
}
