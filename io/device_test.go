package io

import (
	"bytes"
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint16{0x0105, 0x1b01}}
	assert.Equal(2, rom.Len())

	word, ok := rom.Fetch(0)
	assert.True(ok)
	assert.Equal(Word{Opcode: 0x01, Operand: 0x05}, word)

	word, ok = rom.Fetch(0x81)
	assert.True(ok)
	assert.Equal(Word{Opcode: 0x1b, Operand: 0x01}, word)

	word, ok = rom.Fetch(2)
	assert.False(ok)
	assert.Equal(Word{}, word)

	defines := maps.Collect(rom.Defines())
	assert.Equal("128", defines["ROM_SIZE"])
}

func TestRam(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{Image: []uint8{1, 2, 3}}
	ram.Reset()

	assert.Equal(uint8(1), ram.Load(0))
	assert.Equal(uint8(3), ram.Load(2))
	assert.Equal(uint8(0), ram.Load(3))

	assert.NoError(ram.Store(0x85, 0xaa))
	assert.Equal(uint8(0xaa), ram.Load(5))
	assert.NoError(ram.Store(0, 0x55))

	ram.Reset()
	assert.Equal(uint8(1), ram.Load(0))
	assert.Equal(uint8(0), ram.Load(5))
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  bytes.NewReader([]byte("hi")),
		Output: output,
	}

	assert.Equal(uint8('h'), tape.Load(TAPE_IN))
	assert.Equal(uint8('h'), tape.Load(TAPE_OUT))
	assert.Equal(uint8('i'), tape.Load(TAPE_IN))
	assert.False(tape.Eof)
	assert.Equal(uint8(0), tape.Load(TAPE_IN))
	assert.True(tape.Eof)
	assert.Equal(uint8(0), tape.Load(TAPE_IN))

	assert.NoError(tape.Store(TAPE_OUT, 'o'))
	assert.NoError(tape.Store(TAPE_OUT|0x80, 'k'))
	assert.Equal("ok", output.String())

	assert.ErrorIs(tape.Store(TAPE_IN, 'x'), ErrReadOnly)

	tape.Reset()
	assert.False(tape.Eof)

	tape.Output = failWriter{}
	assert.ErrorIs(tape.Store(TAPE_OUT, 'x'), errWrite)

	tape.Output = nil
	assert.NoError(tape.Store(TAPE_OUT, 'x'))

	tape.Input = nil
	assert.Equal(uint8(0), tape.Load(TAPE_IN))
	assert.True(tape.Eof)
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	mem := &Memory{}
	mem.Ram.Image = []uint8{0x10: 0x42}
	mem.Tape.Input = bytes.NewReader([]byte{0x99})
	mem.Tape.Output = output
	mem.Reset()

	assert.Equal(uint8(0x42), mem.Load(0x10))
	assert.Equal(uint8(0x99), mem.Load(TAPE_IN))

	assert.NoError(mem.Store(0x20, 0x77))
	assert.Equal(uint8(0x77), mem.Ram.Data[0x20])
	assert.NoError(mem.Store(TAPE_OUT, 'z'))
	assert.Equal("z", output.String())
	assert.Equal(uint8(0), mem.Ram.Data[TAPE_OUT])

	defines := maps.Collect(mem.Defines())
	assert.Equal("128", defines["RAM_SIZE"])
	assert.Equal("0x7e", defines["TAPE_IN"])
	assert.Equal("0x7f", defines["TAPE_OUT"])
}
