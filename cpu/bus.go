package cpu

// BusDirection is the ownership of the data bus for a cycle.
type BusDirection int

//go:generate go tool stringer -linecomment -type=BusDirection
const (
	BUS_SAMPLE = BusDirection(0) // sample
	BUS_DRIVE  = BusDirection(1) // drive
)

// BusTransaction is the data bus activity of a single cycle.
// On BUS_SAMPLE the value is the one supplied by the external side.
type BusTransaction struct {
	Direction BusDirection
	Value     uint8
}

// Bus is the external bus interface: the bidirectional 8-bit data bus and
// the output-only address port carrying the 7-bit address and write enable.
//
// The fields hold the pins of the last settled cycle; nothing else is
// remembered between cycles.
type Bus struct {
	In  uint8 // Value supplied by the external side this cycle.
	Out uint8 // Value driven by the CPU.
	Oe  bool  // Output enable; the CPU owns the data bus.

	Address uint8 // Address port, 7 bits.
	We      bool  // Write enable.
}

// Latch captures the externally supplied data bus value for this cycle.
func (bus *Bus) Latch(value uint8) {
	bus.In = value
}

// Drive asserts output enable and places value on the data bus.
func (bus *Bus) Drive(value uint8) {
	bus.Oe = true
	bus.Out = value
}

// Sample releases the data bus and returns the external value.
func (bus *Bus) Sample() uint8 {
	bus.Oe = false
	bus.Out = 0
	return bus.In
}

// Select places an address and write enable on the address port.
func (bus *Bus) Select(address uint8, we bool) {
	bus.Address = address & PC_MASK
	bus.We = we
}

// Port returns the address port byte: bit 7 is WE, bits 0-6 the address.
func (bus *Bus) Port() (value uint8) {
	value = bus.Address & PC_MASK
	if bus.We {
		value |= WE_BIT
	}
	return
}

// OutputEnable returns the per-bit output enable of the data bus.
func (bus *Bus) OutputEnable() uint8 {
	if bus.Oe {
		return 0xff
	}
	return 0x00
}

// Transaction returns the current cycle's bus activity.
func (bus *Bus) Transaction() BusTransaction {
	if bus.Oe {
		return BusTransaction{Direction: BUS_DRIVE, Value: bus.Out}
	}
	return BusTransaction{Direction: BUS_SAMPLE, Value: bus.In}
}

// Reset releases the bus and clears the address port.
func (bus *Bus) Reset() {
	*bus = Bus{In: bus.In}
}
