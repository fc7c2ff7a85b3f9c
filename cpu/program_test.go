package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Lines: []Line{
			{LineNo: 1, Pc: 0, Words: []string{"lda", "#5"},
				Code: Code{Op: OP_LDA_IMM, Operand: 5}},
			{LineNo: 2, Pc: 1, Words: []string{"add", "0x10"},
				Code: Code{Op: OP_ADD_DIR, Operand: 0x10}},
			{LineNo: 4, Pc: 2, Words: []string{"jmp", "#2"},
				Code: Code{Op: OP_JMP_IMM, Operand: 2}},
		},
		Data: map[uint8]uint8{
			0x10: 0x33,
			0x8f: 0x44,
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Line)
	assert.Equal(1, dbg.LineNo)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Line)
	assert.Equal(2, dbg.LineNo)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Line)
	assert.Equal(4, dbg.LineNo)

	dbg = prog.Debug(3)
	assert.Nil(dbg.Line)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	bins := prog.Binary()
	assert.Equal([]uint16{0x0105, 0x0610, 0x1b02}, bins)

	// Gaps are filled with NOP.
	prog.Lines[1].Pc = 4
	bins = prog.Binary()
	assert.Equal([]uint16{0x0105, 0, 0x1b02, 0, 0x0610}, bins)

	empty := &Program{}
	assert.Empty(empty.Binary())
}

func TestProgram_Image(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	image := prog.Image()
	assert.Equal(DATA_MAX, len(image))
	assert.Equal(uint8(0x33), image[0x10])
	assert.Equal(uint8(0x44), image[0x0f])
	assert.Equal(uint8(0), image[0x11])
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var pcs []uint8
	var codes []Code
	for pc, code := range prog.Codes() {
		pcs = append(pcs, pc)
		codes = append(codes, code)
	}

	assert.Equal([]uint8{0, 1, 2}, pcs)
	assert.Equal(Code{Op: OP_ADD_DIR, Operand: 0x10}, codes[1])

	// Early exit.
	count := 0
	for range prog.Codes() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	buf := &bytes.Buffer{}
	err := prog.Listing(buf)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(5, len(lines))
	assert.Equal("00: 0105  lda #0x05    ;    1: lda #5", lines[0])
	assert.Equal("01: 0610  add 0x10     ;    2: add 0x10", lines[1])
	assert.Equal("02: 1b02  jmp #0x02    ;    4: jmp #2", lines[2])
	assert.Equal("10: 33", lines[3])
	assert.Equal("8f: 44", lines[4])
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestProgram_ListingError(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	err := prog.Listing(failWriter{})
	assert.ErrorIs(err, errWrite)
}

func TestProgram_Assembled(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("lda #5\nadd 0x10\n\n\nhalt\n.data 0x10 0x33\n"))
	assert.NoError(err)

	bins := prog.Binary()
	assert.Equal([]uint16{0x0105, 0x0610, 0x1b02}, bins)
	assert.Equal(5, prog.Debug(2).LineNo)
	assert.Equal(uint8(0x33), prog.Image()[0x10])
}
