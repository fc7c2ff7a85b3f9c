package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

// IllegalPolicy selects how the control unit treats undefined opcodes.
type IllegalPolicy int

//go:generate go tool stringer -linecomment -type=IllegalPolicy
const (
	ILLEGAL_NOP   = IllegalPolicy(0) // nop
	ILLEGAL_TRAP  = IllegalPolicy(1) // trap
	ILLEGAL_FAULT = IllegalPolicy(2) // fault
)

var _cpu_defines = map[string]string{
	"PC_MASK": fmt.Sprintf("0x%02x", PC_MASK),
	"WE_BIT":  fmt.Sprintf("0x%02x", WE_BIT),
}

// Input is the state of the input pins for a clock edge.
type Input struct {
	ResetN   bool  // Active-low synchronous reset.
	Enable   bool  // Clock enable.
	TestMode uint8 // Debug output select, 3 bits.
	Bus      uint8 // Data bus value from the external side.
}

// Output is the state of the output pins after a clock edge.
type Output struct {
	Bus uint8 // Data bus value driven by the CPU.
	Oe  uint8 // Data bus output enable, per bit.
	Out uint8 // Primary output: address port, or debug value.
}

// Cpu is the simulation context for the accu8 core.
type Cpu struct {
	Verbose bool          // Set to enable verbose logging.
	Illegal IllegalPolicy // Treatment of undefined opcodes.

	Registers              // Register file.
	State     ControlState // Current control unit micro-step.
	Bus       Bus          // External bus interface.

	Ticks   int // Clock edges executed since reset.
	Retired int // Instructions completed since reset.
	Power   int // Accumulator bits flipped since reset.

	resetSync bool // Reset synchronizer flop.
}

// NewCpu creates a new CPU, held in reset until the first edge with reset
// released has passed through the synchronizer.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		State:     STATE_RESET_0,
		resetSync: true,
	}
	cpu.settle()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"state", "pc", "ir", "a", "m", "ccr", "bus",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State.String()
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X %v", cpu.Ir, Opcode(cpu.Ir))
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "m":
			strval = fmt.Sprintf("%02X", cpu.M)
		case "ccr":
			strval = cpu.Ccr.String()
		case "bus":
			tr := cpu.Bus.Transaction()
			strval = fmt.Sprintf("%v %02X @%02X", tr.Direction, tr.Value, cpu.Bus.Port())
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state, as if reset had been held and then released long
// enough to pass the synchronizer. The next Step leaves the reset state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.hold()
	cpu.resetSync = false
	cpu.Ticks = 0
	cpu.Retired = 0
	cpu.Power = 0
	cpu.settle()
}

// hold forces the reset state.
func (cpu *Cpu) hold() {
	cpu.Registers.Reset()
	cpu.Bus.Reset()
	cpu.State = STATE_RESET_0
}

// Step advances the core by one rising clock edge.
//
// Reset is sampled through a one flop synchronizer, so the core stays in
// the reset state for one edge after reset is released. With enable low
// the state and registers are frozen.
//
// An error is only returned for an undefined opcode when the policy is
// ILLEGAL_FAULT. The core has already continued past it.
func (cpu *Cpu) Step(in Input) (out Output, err error) {
	cpu.Bus.Latch(in.Bus)

	reset := !in.ResetN
	held := reset || cpu.resetSync
	cpu.resetSync = reset

	switch {
	case held:
		cpu.hold()
	case !in.Enable:
		// frozen
	default:
		err = cpu.edge()
		cpu.Ticks++
	}

	cpu.settle()

	out = cpu.Output(DebugMode(in.TestMode & DEBUG_PIN_MASK))

	return
}

// Output returns the output pins for the current state, with the debug
// multiplexer set to mode.
func (cpu *Cpu) Output(mode DebugMode) (out Output) {
	out.Bus = cpu.Bus.Out
	out.Oe = cpu.Bus.OutputEnable()
	if mode == DEBUG_OFF {
		out.Out = cpu.Bus.Port()
	} else {
		out.Out = mode.Select(&cpu.Registers, cpu.State)
	}

	return
}

// settle computes the bus and address port for the current state.
func (cpu *Cpu) settle() {
	state := cpu.State

	address := cpu.Pc
	if state.UsesM() {
		address = cpu.M
	}

	drive := state.Drives()
	cpu.Bus.Select(address, drive)
	switch {
	case drive:
		cpu.Bus.Drive(cpu.A)
	case state.Presents():
		cpu.Bus.Drive(cpu.M)
	default:
		cpu.Bus.Sample()
	}
}

// edge performs the register transfers of the current micro-step, and
// moves to the next one.
func (cpu *Cpu) edge() (err error) {
	state := cpu.State
	op := Opcode(cpu.Ir)

	next := state.Next(op, cpu.Ccr)

	switch state.Kind {
	case STATE_FETCH:
		if state.Step == 2 {
			cpu.Ir = cpu.Bus.Sample()
			if cpu.Verbose {
				log.Printf("cpu: %02x: %v", cpu.Pc, Opcode(cpu.Ir))
			}
		}
	case STATE_DECODE:
		if !op.Valid() {
			switch cpu.Illegal {
			case ILLEGAL_TRAP:
				if cpu.Verbose {
					log.Printf("cpu: %02x: trap on %v", cpu.Pc, op)
				}
				cpu.hold()
				return
			case ILLEGAL_FAULT:
				err = errors.Join(ErrOpcode(op), ErrOpcodeIllegal)
			}
		}
		if next == STATE_FETCH_0 {
			// nop, undefined, or untaken branch
			cpu.IncPc()
			cpu.Retired++
		}
	case STATE_LDA_IMM, STATE_ALU_IMM, STATE_JMP_IMM:
		if state.Step == 1 {
			cpu.complete(state.Kind, op)
		}
	case STATE_LDA_DIR, STATE_ALU_DIR, STATE_JMP_DIR:
		switch state.Step {
		case 1:
			cpu.M = cpu.Bus.Sample()
		case 3:
			cpu.complete(state.Kind, op)
		}
	case STATE_STA_IMM:
		if state.Step == 1 {
			cpu.M = cpu.Bus.Sample()
		}
	case STATE_STA_DIR:
		if state.Step == 1 || state.Step == 3 {
			cpu.M = cpu.Bus.Sample()
		}
	case STATE_PC_INC:
		cpu.IncPc()
		cpu.Retired++
	}

	cpu.State = next

	return
}

// complete performs the final operand transfer of a load, ALU, or jump.
func (cpu *Cpu) complete(kind StateKind, op Opcode) {
	value := cpu.Bus.Sample()

	switch kind {
	case STATE_LDA_IMM, STATE_LDA_DIR:
		cpu.Power += cpu.LoadA(value)
	case STATE_ALU_IMM, STATE_ALU_DIR:
		alu, ok := op.AluOp()
		if !ok {
			// Decode only enters the ALU states for ALU opcodes.
			panic(fmt.Sprintf("alu state with opcode %v", op))
		}
		cpu.Power += cpu.WriteAlu(alu.Apply(cpu.A, value))
	case STATE_JMP_IMM, STATE_JMP_DIR:
		cpu.SetPc(value)
		cpu.Retired++
	}
}
