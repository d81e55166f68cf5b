package isa

import (
	"fmt"
)

// immediate renders a raw immediate field.
func immediate(field uint32, bits int, unsigned bool) string {
	if unsigned {
		return fmt.Sprintf("%d", field)
	}
	return fmt.Sprintf("%d", SignExtend(field, bits))
}

// Disassemble returns the assembly language representation of the word.
//
// One-address instructions have no label to refer to, so their target is
// rendered as the signed offset from the following instruction.
func (w Word) Disassemble() (out string) {
	op := w.Opcode()
	if !op.Valid() {
		return fmt.Sprintf(".word 0x%08x", uint32(w))
	}

	imm := w.Mode() == MODE_IMMEDIATE

	switch op.Format() {
	case FORMAT_ZERO:
		out = op.String()
	case FORMAT_ONE:
		out = fmt.Sprintf("%v %+d", op, w.Offset())
	case FORMAT_TWO:
		rs1 := w.A()
		if op == OP_CMP {
			rs1 = w.B()
		}
		if imm {
			out = fmt.Sprintf("%v %v %v", op, rs1, immediate(w.Imm18(), IMM18_BITS, false))
		} else {
			out = fmt.Sprintf("%v %v %v", op, rs1, w.C())
		}
	case FORMAT_THREE:
		if imm {
			mod := w.Modifier()
			out = fmt.Sprintf("%v%v %v %v %v", op, mod, w.A(), w.B(), immediate(w.Imm16(), IMM16_BITS, mod.Unsigned()))
		} else {
			out = fmt.Sprintf("%v %v %v %v", op, w.A(), w.B(), w.C())
		}
	case FORMAT_MEMORY:
		if imm {
			out = fmt.Sprintf("%v %v %v %v", op, w.A(), w.B(), immediate(w.Imm18(), IMM18_BITS, false))
		} else {
			out = fmt.Sprintf("%v %v %v [%v]", op, w.A(), w.B(), w.C())
		}
	}

	return
}
