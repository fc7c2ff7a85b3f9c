package cpu

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

const (
	PROG_MAX = PC_MASK + 1 // Instruction words addressable by the PC.
	DATA_MAX = PC_MASK + 1 // Bytes addressable by the address port.
)

// Line represents a line of assembled code with its source location and
// generated instruction.
type Line struct {
	LineNo    int
	Pc        int
	Words     []string
	Code      Code
	LinkLabel string
}

// Program is an assembled program: instruction words, and the initial
// contents of data memory.
type Program struct {
	Lines []Line
	Data  map[uint8]uint8
}

// Debug is the source line of an instruction.
type Debug struct {
	*Line
}

// Debug returns the source line assembled at a program counter.
func (prog *Program) Debug(pc uint8) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(pc) == line.Pc {
			dbg = Debug{
				Line: &prog.Lines[n],
			}
			break
		}
	}

	return
}

// Binary returns the instruction words, indexed by program counter.
// Program counters without an instruction hold NOP.
func (prog *Program) Binary() (bins []uint16) {
	for pc, code := range prog.Codes() {
		if int(pc) >= len(bins) {
			bins = append(bins, make([]uint16, int(pc)+1-len(bins))...)
		}
		bins[pc] = code.Word()
	}

	return
}

// Image returns the initial data memory contents.
func (prog *Program) Image() (image []uint8) {
	image = make([]uint8, DATA_MAX)
	for addr, value := range prog.Data {
		image[addr&PC_MASK] = value
	}

	return
}

// Codes iterates over the instructions by program counter.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(pc uint8, code Code) bool) {
		for _, line := range prog.Lines {
			if !yield(uint8(line.Pc), line.Code) {
				return
			}
		}
	}
}

// Listing writes the program listing: program counter, instruction word,
// disassembly, and source line, followed by the initialized data.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		_, err = fmt.Fprintf(w, "%02x: %04x  %-12v ; %4d: %v\n",
			line.Pc, line.Code.Word(), line.Code, line.LineNo, strings.Join(line.Words, " "))
		if err != nil {
			return
		}
	}

	for _, addr := range slices.Sorted(maps.Keys(prog.Data)) {
		_, err = fmt.Fprintf(w, "%02x: %02x\n", addr, prog.Data[addr])
		if err != nil {
			return
		}
	}

	return
}
