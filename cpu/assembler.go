// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":   "0",
	"PC_MASK":  fmt.Sprintf("%#x", PC_MASK),
	"PROG_MAX": fmt.Sprintf("%v", PROG_MAX),
}

// Assembler is a single pass macro assembler for the accu8 core.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated instructions.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to program counters.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
	Data      map[uint8]uint8     // Initial data memory contents.

	expansions int // Count of macro expansions, for local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonicMap maps instruction mnemonics to class and ALU operation.
var mnemonicMap = func() map[string]struct {
	class OpClass
	alu   AluOp
} {
	mnemonics := map[string]struct {
		class OpClass
		alu   AluOp
	}{}
	for class := CLASS_NOP; class < CLASS_ILLEGAL; class++ {
		if class == CLASS_ALU {
			continue
		}
		mnemonics[class.String()] = struct {
			class OpClass
			alu   AluOp
		}{class: class}
	}
	for alu := ALU_OP_ADD; alu <= ALU_OP_RSR; alu++ {
		mnemonics[alu.String()] = struct {
			class OpClass
			alu   AluOp
		}{class: CLASS_ALU, alu: alu}
	}
	return mnemonics
}()

var labelPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if len(word) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	if invert {
		value = int(^uint8(value))
	}

	return
}

// byteOf returns the value of a word as an operand byte. Negative values
// down to -128 are stored as two's complement.
func (asm *Assembler) byteOf(word string) (value uint8, err error) {
	v, err := asm.valueOf(word)
	if err != nil {
		return
	}

	if v < -128 || v > 0xff {
		err = ErrOperandRange
		return
	}

	value = uint8(v)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be mnemonics
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	err = nil
	for key, pc := range asm.Label {
		pred[key] = starlark.MakeInt(pc)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine parses a single line into words, handling equates, labels,
// and macro expansion.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next, also behind an immediate marker.
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
			continue
		}
		if strings.HasPrefix(word, "#") {
			equate, ok = asm.Equate[word[1:]]
			if ok {
				words[n] = "#" + equate
			}
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentPc()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// '@' in a macro body makes a label local to this expansion.
		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentPc gets the program counter of the next instruction.
func (asm *Assembler) currentPc() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	return asm.Lines[len(asm.Lines)-1].Pc + 1
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Lines = asm.Lines[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Data = make(map[uint8]uint8)
	asm.expansions = 0
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		pc, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		op.Code.Operand = uint8(pc)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
		Data:  maps.Clone(asm.Data),
	}

	return
}

// parseData handles '.data ADDR VALUE...', placing the values at
// consecutive data addresses.
func (asm *Assembler) parseData(words []string) (err error) {
	if len(words) < 2 {
		err = ErrDataSyntax
		return
	}

	addr, err := asm.valueOf(words[0])
	if err != nil {
		return
	}

	for n, word := range words[1:] {
		if addr+n < 0 || addr+n > PC_MASK {
			err = ErrOperandRange
			return
		}
		var value uint8
		value, err = asm.byteOf(word)
		if err != nil {
			return
		}
		asm.Data[uint8(addr+n)] = value
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if words[0] == ".data" {
		return asm.parseData(words[1:])
	}

	pc := asm.currentPc()
	if pc >= PROG_MAX {
		err = ErrProgramFull
		return
	}

	var code Code
	var label string

	defer func() {
		if err != nil {
			return
		}
		opcode := Line{LineNo: lineno, Pc: pc, Words: words, Code: code, LinkLabel: label}
		asm.Lines = append(asm.Lines, opcode)
	}()

	// Alternate syntax substitutions
	switch {
	case len(words) == 1 && words[0] == "halt":
		// halt => jmp #<here>
		code = Code{Op: OP_JMP_IMM, Operand: uint8(pc)}
		return
	case len(words) == 1 && words[0] == "clr":
		// clr => lda #0
		words = []string{"lda", "#0"}
	}

	mnemonic, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if mnemonic.class == CLASS_NOP {
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		code = Code{Op: OP_NOP}
		return
	}

	if len(words) < 2 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	operand := words[1]
	mode := MODE_DIR
	if strings.HasPrefix(operand, "#") {
		mode = MODE_IMM
		operand = operand[1:]
	}

	op, ok := MakeOpcode(mnemonic.class, mode, mnemonic.alu)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	code.Op = op

	if labelPattern.MatchString(operand) {
		label = operand
		return
	}

	code.Operand, err = asm.byteOf(operand)

	return
}
