// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/tinyrisc/isa"
)

// Assembler is a two pass assembler for TinyRISC. Each value holds the state
// of a single assembly run: use one Assembler per program when assembling
// concurrently.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Label   LabelTable // Map of labels to instruction indexes.
	Pc      int        // Instructions emitted so far, including the current one.
	LineNo  int        // Source lines consumed so far.

	predefine map[string]int64 // Predefined expression values.
}

// Predefine defines a new value, or redefines an existing value, visible to
// $(...) expressions.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Reset clears the per-run state. Predefines are kept.
func (asm *Assembler) Reset() {
	asm.Label = LabelTable{}
	asm.Pc = 0
	asm.LineNo = 0
}

// Resolve runs the label pass over the whole program and rewinds the
// assembler to its first line.
func (asm *Assembler) Resolve(lines []string) {
	asm.Reset()
	asm.Label = ResolveLabels(lines)

	if asm.Verbose {
		for label, index := range asm.Label {
			log.Printf("label %v: %v\n", label, index)
		}
	}
}

// AssembleLine assembles the next source line. It returns false if the line
// carries no instruction.
func (asm *Assembler) AssembleLine(line string) (res Result, ok bool) {
	asm.LineNo++

	ln := Preprocess(line)
	if ln.Empty() {
		return
	}

	asm.Pc++

	res = Result{
		LineNo: asm.LineNo,
		Line:   strings.TrimSpace(line),
		Index:  asm.Pc - 1,
	}
	ok = true

	if asm.Verbose {
		log.Printf("%v: %v\n", res.LineNo, ln.Text)
	}

	words := Words(ln.Text)
	op, mod, err := decodeMnemonic(words[0])
	if err == nil {
		res.Word, err = asm.encode(op, mod, words[1:])
	}

	if err != nil {
		res.Err = &ErrSyntax{LineNo: res.LineNo, Line: res.Line, Err: err}
		if asm.Verbose {
			log.Printf("%v: %v\n", res.LineNo, err)
		}
	}

	return
}

// Assemble runs both passes over a program. Lines that fail to assemble are
// reported in the Program and do not stop the remaining lines.
func (asm *Assembler) Assemble(lines []string) (prog *Program) {
	asm.Resolve(lines)

	prog = &Program{
		Label: asm.Label,
	}

	for _, line := range lines {
		res, ok := asm.AssembleLine(line)
		if ok {
			prog.Results = append(prog.Results, res)
		}
	}

	return
}

// Parse reads an input stream and assembles it into a Program. The error is
// only set if the input could not be read; assembly diagnostics are found in
// the Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.Assemble(lines)

	return
}

// Result is the outcome of assembling a single source line: either a word,
// or an error.
type Result struct {
	LineNo int      // Source line number, from 1.
	Line   string   // Source line text.
	Index  int      // Instruction index of the line.
	Word   isa.Word // Assembled word, if Err is nil.
	Err    error    // Diagnostic, wrapped in ErrSyntax.
}

// Ok returns true if the line assembled.
func (res Result) Ok() bool {
	return res.Err == nil
}

// String returns the 32 binary digit machine word, or the diagnostic.
func (res Result) String() string {
	if res.Err != nil {
		return res.Err.Error()
	}
	return res.Word.String()
}
