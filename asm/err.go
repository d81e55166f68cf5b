package asm

import (
	"errors"

	"github.com/ezrec/tinyrisc/isa"
	"github.com/ezrec/tinyrisc/translate"
)

var f = translate.From

var (
	// Diagnostic kinds. Every per-line error matches exactly one of these
	// with errors.Is().
	ErrUndefinedLabel    = errors.New(f("undefined label"))
	ErrUnknownOpcode     = errors.New(f("unknown opcode"))
	ErrInvalidModifier   = errors.New(f("invalid modifier"))
	ErrValueOutOfRange   = errors.New(f("value out of range"))
	ErrMalformedOperands = errors.New(f("malformed operands"))
)

// Kinds lists the diagnostic kinds in report order.
var Kinds = []error{
	ErrUndefinedLabel,
	ErrUnknownOpcode,
	ErrInvalidModifier,
	ErrValueOutOfRange,
	ErrMalformedOperands,
}

// KindOf returns the diagnostic kind of err, or nil.
func KindOf(err error) error {
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v not defined", string(el))
}

func (el ErrLabelMissing) Is(err error) bool {
	return err == ErrUndefinedLabel
}

type ErrOpcodeUnknown string

func (eo ErrOpcodeUnknown) Error() string {
	return f("unknown opcode %v", string(eo))
}

func (eo ErrOpcodeUnknown) Is(err error) bool {
	return err == ErrUnknownOpcode
}

// ErrModifier is a mnemonic suffix that is not a modifier of its opcode.
type ErrModifier struct {
	Opcode isa.Opcode
	Suffix string
}

func (err ErrModifier) Error() string {
	return f("invalid modifier %v for %v", err.Suffix, err.Opcode.String())
}

func (err ErrModifier) Is(target error) bool {
	return target == ErrInvalidModifier
}

// ErrRange is a value that does not fit its instruction field.
type ErrRange struct {
	Value    int64
	Bits     int
	Unsigned bool
}

func (err ErrRange) Error() string {
	if err.Unsigned {
		return f("%v does not fit in %v unsigned bits", err.Value, err.Bits)
	}
	return f("%v does not fit in %v signed bits", err.Value, err.Bits)
}

func (err ErrRange) Is(target error) bool {
	return target == ErrValueOutOfRange
}

// ErrOperandCount is an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Opcode isa.Opcode
	Want   int
	Got    int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %v operands, not %v", err.Opcode.String(), err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrMalformedOperands
}

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrMalformedOperands
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrMalformedOperands
}

// ErrParseExpression is a $(...) expression that did not evaluate to an integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrParseExpression) Unwrap() error {
	return err.Err
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrMalformedOperands && KindOf(err.Err) == nil
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
