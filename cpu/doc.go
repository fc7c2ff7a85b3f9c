// Package cpu implements a cycle-accurate model of the accu8 microcontroller
// core, and the assembler for its instruction set.
//
// The core has a 7-bit program counter (PC), an 8-bit accumulator (A), an
// instruction register (IR), a memory latch (M), and a two flag condition code
// register (CCR). Every call to Cpu.Step is one rising clock edge: the pins are
// sampled, the control state machine advances one micro-step, and the output
// pins are recomputed from the new state.
//
// The assembler provides a small macro assembly language for the instruction
// set, supporting labels, equates, macros, data initializers, and compile-time
// expression evaluation.
package cpu
