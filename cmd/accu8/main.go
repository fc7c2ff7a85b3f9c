// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/accu8/cpu"
	"github.com/ezrec/accu8/emulator"
)

var _illegal = map[string]cpu.IllegalPolicy{
	cpu.ILLEGAL_NOP.String():   cpu.ILLEGAL_NOP,
	cpu.ILLEGAL_TRAP.String():  cpu.ILLEGAL_TRAP,
	cpu.ILLEGAL_FAULT.String(): cpu.ILLEGAL_FAULT,
}

func main() {
	var compile string
	var input string
	var output string
	var verbose bool
	var trace bool
	var cycles int
	var listing bool
	var illegal string

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Trace every clock edge to stderr")
	flag.IntVar(&cycles, "n", 0, "Cycle limit, 0 for none")
	flag.BoolVar(&listing, "l", false, "Print the listing, do not execute")
	flag.StringVar(&illegal, "x", cpu.ILLEGAL_NOP.String(), "Undefined opcode policy: nop, trap, or fault")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	policy, ok := _illegal[strings.ToLower(illegal)]
	if !ok {
		log.Fatalf("%v: Unknown undefined opcode policy: %v", os.Args[0], illegal)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Illegal = policy
	emu.MaxCycles = cycles

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if listing {
		err := emu.Program.Listing(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if input == "-" {
		emu.Memory.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Memory.Tape.Input = inf
	}

	if output == "-" {
		emu.Memory.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Memory.Tape.Output = ouf
	}

	if trace {
		emu.Trace = os.Stderr
		emu.TraceColor = term.IsTerminal(int(os.Stderr.Fd()))
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if verbose {
		log.Printf("%v: %d cycles, %d instructions, %d bits flipped",
			compile, emu.Ticks(), emu.Cpu.Retired, emu.Power())
	}
	if err != nil {
		log.Fatal(err)
	}
}
