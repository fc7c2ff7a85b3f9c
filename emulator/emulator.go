// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	stdio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/accu8/cpu"
	"github.com/ezrec/accu8/internal"
	"github.com/ezrec/accu8/io"
)

const (
	RESET_CYCLES = 10 // Edges that reset is held low for.
)

var _emulator_defines = map[string]string{
	"RESET_CYCLES": fmt.Sprintf("%v", RESET_CYCLES),
}

const (
	_traceWrite = "\x1b[1;33m"
	_traceFetch = "\x1b[36m"
	_traceReset = "\x1b[0m"
)

// Emulator state. CPU + program ROM + data memory.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom    io.Rom    // Program ROM.
	Memory io.Memory // Data RAM and tape port.

	Trace      stdio.Writer // If set, receives one line per clock edge.
	TraceColor bool         // Colour the trace with ANSI escapes.
	TestMode   uint8        // Debug output select driven on every edge.
	MaxCycles  int          // If non-zero, maximum edges before ErrCycleLimit.

	fetchPc int // Program counter at the last instruction fetch.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Rom.Defines(),
		emu.Memory.Defines(),
	)
}

// Reset loads the program, holds reset low for RESET_CYCLES edges, then
// releases it and clocks through the synchronizer until the first fetch.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	emu.Rom.Data = emu.Program.Binary()
	emu.Memory.Ram.Image = emu.Program.Image()
	emu.Memory.Reset()

	in := cpu.Input{
		ResetN:   false,
		Enable:   true,
		TestMode: emu.TestMode,
	}

	for range RESET_CYCLES {
		_, err = emu.Cpu.Step(in)
		if err != nil {
			return
		}
	}

	in.ResetN = true
	for emu.Cpu.State != cpu.STATE_FETCH_0 {
		_, err = emu.Cpu.Step(in)
		if err != nil {
			return
		}
	}

	// Reset cycle and power stats.
	emu.Cpu.Ticks = 0
	emu.Cpu.Retired = 0
	emu.Cpu.Power = 0

	emu.fetchPc = int(emu.Cpu.Pc)

	emu.Cpu.Verbose = emu.Verbose

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Power returns the total power consumed.
func (emu *Emulator) Power() int {
	return emu.Cpu.Power
}

// Code returns the instruction at the current program counter.
func (emu *Emulator) Code() (code cpu.Code) {
	pc := int(emu.Cpu.Pc)
	if pc < emu.Rom.Len() {
		code = cpu.MakeCode(emu.Rom.Data[pc])
	}
	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// supply returns the data bus value the external side presents for the
// current micro-step.
func (emu *Emulator) supply() (value uint8) {
	cp := emu.Cpu

	switch cp.State.Phase() {
	case cpu.PHASE_OPCODE:
		word, _ := emu.Rom.Fetch(cp.Pc)
		value = word.Opcode
	case cpu.PHASE_OPERAND:
		word, _ := emu.Rom.Fetch(cp.Pc)
		value = word.Operand
	case cpu.PHASE_DATA:
		value = emu.Memory.Load(cp.Bus.Address)
	}

	return
}

// trace writes the trace line for the last edge.
func (emu *Emulator) trace(in uint8, out cpu.Output) (err error) {
	if emu.Trace == nil {
		return
	}

	cp := emu.Cpu
	tr := cp.Bus.Transaction()
	if tr.Direction == cpu.BUS_SAMPLE {
		tr.Value = in
	}

	line := fmt.Sprintf("%6d %-10v pc=%02x ir=%02x a=%02x m=%02x ccr=%v %v %02x out=%02x",
		cp.Ticks, cp.State, cp.Pc, cp.Ir, cp.A, cp.M, cp.Ccr, tr.Direction, tr.Value, out.Out)

	if emu.TraceColor {
		switch {
		case cp.Bus.We:
			line = _traceWrite + line + _traceReset
		case cp.State == cpu.STATE_DECODE_0:
			line = _traceFetch + line + _traceReset
		}
	}

	_, err = fmt.Fprintln(emu.Trace, line)
	return
}

// Tick performs a single clock edge of the emulator.
//
// Done is reported when the program halts: the CPU fetches from the same
// program counter twice in a row, or runs off the end of the program.
// A fetch that follows a trap through the reset state is not a halt.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	cp := emu.Cpu

	if cp.State == cpu.STATE_FETCH_0 && int(cp.Pc) >= emu.Rom.Len() {
		if emu.Verbose {
			log.Printf("emu: %02x: end of program", cp.Pc)
		}
		done = true
		return
	}

	if emu.MaxCycles > 0 && cp.Ticks >= emu.MaxCycles {
		err = ErrCycleLimit
		return
	}

	trapped := cp.State == cpu.STATE_RESET_0

	bus := emu.supply()
	out, err := cp.Step(cpu.Input{
		ResetN:   true,
		Enable:   true,
		TestMode: emu.TestMode,
		Bus:      bus,
	})

	if cp.Bus.We {
		if emu.Verbose {
			log.Printf("emu: store %02x @%02x", cp.Bus.Out, cp.Bus.Address)
		}
		err = errors.Join(err, emu.Memory.Store(cp.Bus.Address, cp.Bus.Out))
	}

	err = errors.Join(err, emu.trace(bus, out))
	if err != nil {
		return
	}

	if cp.State == cpu.STATE_FETCH_0 {
		pc := int(cp.Pc)
		if pc == emu.fetchPc && !trapped {
			if emu.Verbose {
				log.Printf("emu: %02x: halt", cp.Pc)
			}
			done = true
		}
		emu.fetchPc = pc
	}

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
