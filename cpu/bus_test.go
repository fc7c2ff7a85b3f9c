package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	assert := assert.New(t)

	bus := &Bus{}

	bus.Latch(0x42)
	assert.Equal(uint8(0x42), bus.Sample())
	assert.Equal(uint8(0), bus.OutputEnable())
	assert.Equal(BusTransaction{Direction: BUS_SAMPLE, Value: 0x42}, bus.Transaction())

	bus.Select(0xa5, true)
	bus.Drive(0x99)
	assert.Equal(uint8(0xff), bus.OutputEnable())
	assert.Equal(uint8(0x25|WE_BIT), bus.Port())
	assert.Equal(BusTransaction{Direction: BUS_DRIVE, Value: 0x99}, bus.Transaction())

	assert.Equal(uint8(0x42), bus.Sample())
	assert.Equal(uint8(0), bus.Out)
	assert.False(bus.Oe)

	bus.Select(0x10, false)
	assert.Equal(uint8(0x10), bus.Port())

	bus.Reset()
	assert.Equal(Bus{In: 0x42}, *bus)
	assert.Equal("drive", BUS_DRIVE.String())
}
