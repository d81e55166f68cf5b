package isa

import (
	"fmt"
)

// Word is a single 32-bit TinyRISC instruction.
type Word uint32

// Bit layout of an instruction word.
//
//	31..27  opcode
//	26      mode (1 = immediate)
//	25..22  field A (dst, rd, or rs1 of NOT/MOV)
//	21..18  field B (src1, rs1 of LD/ST and CMP)
//	17..14  field C (register operand, mode 0)
//	17..16  modifier (three-address, mode 1)
//	15..0   imm16 (three-address, mode 1)
//	17..0   imm18 (two-address and load/store, mode 1)
//	26..0   offset (one-address)
const (
	WORD_BITS = 32

	OPCODE_BITS  = 5
	OPCODE_SHIFT = 27

	MODE_SHIFT = 26

	REG_BITS = 4
	A_SHIFT  = 22
	B_SHIFT  = 18
	C_SHIFT  = 14

	MODIFIER_BITS  = 2
	MODIFIER_SHIFT = 16

	IMM16_BITS  = 16
	IMM18_BITS  = 18
	OFFSET_BITS = 27
)

// Mode selects between register and immediate final operands.
type Mode int

const (
	MODE_REGISTER  = Mode(0) // Final operand is a register (or [Rn]).
	MODE_IMMEDIATE = Mode(1) // Final operand is an immediate.
)

// mask returns the low bits of value.
func mask(value uint32, bits int) uint32 {
	return value & ((1 << bits) - 1)
}

func makeWord(op Opcode, mode Mode) Word {
	return Word((mask(uint32(op), OPCODE_BITS) << OPCODE_SHIFT) | (mask(uint32(mode), 1) << MODE_SHIFT))
}

func regField(reg Register, shift int) Word {
	return Word(mask(uint32(reg), REG_BITS) << shift)
}

// MakeWordZero creates a zero-address instruction.
func MakeWordZero(op Opcode) Word {
	return makeWord(op, MODE_REGISTER)
}

// MakeWordBranch creates a one-address instruction from an encoded 27-bit offset.
func MakeWordBranch(op Opcode, offset uint32) Word {
	return makeWord(op, MODE_REGISTER) | Word(mask(offset, OFFSET_BITS))
}

// twoShift returns the position of rs1 in a two-address instruction.
func twoShift(op Opcode) int {
	if op == OP_CMP {
		return B_SHIFT
	}
	return A_SHIFT
}

// MakeWordTwo creates a register mode two-address instruction.
func MakeWordTwo(op Opcode, rs1, rs2 Register) Word {
	return makeWord(op, MODE_REGISTER) | regField(rs1, twoShift(op)) | regField(rs2, C_SHIFT)
}

// MakeWordTwoImm creates an immediate mode two-address instruction from an encoded imm18.
func MakeWordTwoImm(op Opcode, rs1 Register, imm uint32) Word {
	return makeWord(op, MODE_IMMEDIATE) | regField(rs1, twoShift(op)) | Word(mask(imm, IMM18_BITS))
}

// MakeWordThree creates a register mode three-address instruction.
func MakeWordThree(op Opcode, dst, src1, src2 Register) Word {
	return makeWord(op, MODE_REGISTER) | regField(dst, A_SHIFT) | regField(src1, B_SHIFT) | regField(src2, C_SHIFT)
}

// MakeWordThreeImm creates an immediate mode three-address instruction from an encoded imm16.
func MakeWordThreeImm(op Opcode, mod Modifier, dst, src1 Register, imm uint32) Word {
	return makeWord(op, MODE_IMMEDIATE) | regField(dst, A_SHIFT) | regField(src1, B_SHIFT) |
		Word(mask(uint32(mod), MODIFIER_BITS)<<MODIFIER_SHIFT) | Word(mask(imm, IMM16_BITS))
}

// MakeWordMemory creates a register-indirect load/store instruction.
func MakeWordMemory(op Opcode, rd, rs1, index Register) Word {
	return makeWord(op, MODE_REGISTER) | regField(rd, A_SHIFT) | regField(rs1, B_SHIFT) | regField(index, C_SHIFT)
}

// MakeWordMemoryImm creates an immediate-offset load/store instruction from an encoded imm18.
func MakeWordMemoryImm(op Opcode, rd, rs1 Register, imm uint32) Word {
	return makeWord(op, MODE_IMMEDIATE) | regField(rd, A_SHIFT) | regField(rs1, B_SHIFT) | Word(mask(imm, IMM18_BITS))
}

// Opcode returns the operation code.
func (w Word) Opcode() Opcode {
	return Opcode(mask(uint32(w)>>OPCODE_SHIFT, OPCODE_BITS))
}

// Mode returns the register/immediate mode flag.
func (w Word) Mode() Mode {
	return Mode(mask(uint32(w)>>MODE_SHIFT, 1))
}

// A returns register field A.
func (w Word) A() Register {
	return Register(mask(uint32(w)>>A_SHIFT, REG_BITS))
}

// B returns register field B.
func (w Word) B() Register {
	return Register(mask(uint32(w)>>B_SHIFT, REG_BITS))
}

// C returns register field C.
func (w Word) C() Register {
	return Register(mask(uint32(w)>>C_SHIFT, REG_BITS))
}

// Modifier returns the three-address immediate modifier.
func (w Word) Modifier() Modifier {
	return Modifier(mask(uint32(w)>>MODIFIER_SHIFT, MODIFIER_BITS))
}

// Imm16 returns the raw 16-bit immediate field.
func (w Word) Imm16() uint32 {
	return mask(uint32(w), IMM16_BITS)
}

// Imm18 returns the raw 18-bit immediate field.
func (w Word) Imm18() uint32 {
	return mask(uint32(w), IMM18_BITS)
}

// Offset returns the one-address offset, sign extended.
func (w Word) Offset() int64 {
	return SignExtend(mask(uint32(w), OFFSET_BITS), OFFSET_BITS)
}

// String returns the word as 32 binary digits.
func (w Word) String() string {
	return fmt.Sprintf("%032b", uint32(w))
}

// SignExtend interprets the low bits of field as a two's-complement value.
func SignExtend(field uint32, bits int) int64 {
	value := int64(mask(field, bits))
	if value&(1<<(bits-1)) != 0 {
		value -= 1 << bits
	}
	return value
}
