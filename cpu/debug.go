package cpu

// DebugMode selects the register shown on the primary output port.
type DebugMode int

//go:generate go tool stringer -linecomment -type=DebugMode
const (
	DEBUG_OFF     = DebugMode(0) // off
	DEBUG_A       = DebugMode(1) // a
	DEBUG_A_UPPER = DebugMode(2) // a.upper
	DEBUG_M       = DebugMode(3) // m
	DEBUG_PC      = DebugMode(4) // pc
	DEBUG_IR      = DebugMode(5) // ir
	DEBUG_CCR     = DebugMode(6) // ccr
	DEBUG_STATE   = DebugMode(7) // state
	DEBUG_ALU_OP  = DebugMode(8) // alu.op

	DEBUG_PIN_MASK = 0x7 // The test mode pins select modes 0 to 7.
)

// Select returns the debug output for the mode. DEBUG_OFF selects zero;
// the caller shows the address port instead.
func (mode DebugMode) Select(reg *Registers, state ControlState) (value uint8) {
	switch mode {
	case DEBUG_A:
		value = reg.A & 0x7f
	case DEBUG_A_UPPER:
		value = reg.A >> 7
	case DEBUG_M:
		value = reg.M
	case DEBUG_PC:
		value = reg.Pc
	case DEBUG_IR:
		value = reg.Ir
	case DEBUG_CCR:
		value = reg.Ccr.Pack()
	case DEBUG_STATE:
		value = uint8(state.Index())
	case DEBUG_ALU_OP:
		if alu, ok := Opcode(reg.Ir).AluOp(); ok {
			value = uint8(alu)
		}
	}

	return
}
