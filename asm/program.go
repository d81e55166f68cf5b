package asm

import (
	"errors"
	"iter"

	"github.com/ezrec/tinyrisc/isa"
)

// Program is the output of one assembly run.
type Program struct {
	Label   LabelTable // Resolved labels.
	Results []Result   // One result per instruction line, in source order.
}

// Debug returns the result at an instruction index.
func (prog *Program) Debug(index int) (res Result, ok bool) {
	for _, res = range prog.Results {
		if res.Index == index {
			return res, true
		}
	}

	return Result{}, false
}

// Words iterates over the successfully assembled words, by instruction index.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(index int, word isa.Word) bool) {
		for _, res := range prog.Results {
			if !res.Ok() {
				continue
			}
			if !yield(res.Index, res.Word) {
				return
			}
		}
	}
}

// Binary returns the successfully assembled words.
func (prog *Program) Binary() (words []isa.Word) {
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	return
}

// Errors returns all of the diagnostics.
func (prog *Program) Errors() (errs []error) {
	for _, res := range prog.Results {
		if !res.Ok() {
			errs = append(errs, res.Err)
		}
	}

	return
}

// Err returns all of the diagnostics joined, or nil.
func (prog *Program) Err() error {
	return errors.Join(prog.Errors()...)
}

// Lines returns one machine word or diagnostic string per instruction line.
func (prog *Program) Lines() (lines []string) {
	for _, res := range prog.Results {
		lines = append(lines, res.String())
	}

	return
}
