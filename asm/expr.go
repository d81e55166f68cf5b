// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Name of the expression variable holding the current program counter.
const PC_NAME = "PC"

// isExpression returns true if word is a $(...) compile-time expression.
func isExpression(word string) bool {
	return strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// evaluate does compile-time $(...) evaluations. Labels, predefines and PC
// are visible to the expression; a predefine shadows a label of the same name.
func (asm *Assembler) evaluate(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for name, index := range asm.Label {
		pred[name] = starlark.MakeInt(index)
	}
	for name, v := range asm.predefine {
		pred[name] = starlark.MakeInt64(v)
	}
	pred[PC_NAME] = starlark.MakeInt(asm.Pc)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression{Expr: expr, Err: err}
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression{Expr: expr}
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression{Expr: expr, Err: ErrValueOutOfRange}
		return
	}

	return
}

// immediate parses a literal or expression word into a field of the given
// width.
func (asm *Assembler) immediate(word string, bits int, unsigned bool) (field uint32, err error) {
	var value int64
	if isExpression(word) {
		value, err = asm.evaluate(word[2 : len(word)-1])
	} else {
		value, err = ParseInteger(word)
	}
	if err != nil {
		return
	}

	if unsigned {
		return Unsigned(value, bits)
	}

	return Signed(value, bits)
}
