package asm

import (
	"strings"

	"github.com/ezrec/tinyrisc/isa"
)

// register returns the register named by word.
func register(word string) (reg isa.Register, err error) {
	reg, ok := isa.LookupRegister(word)
	if !ok {
		err = ErrRegister(word)
	}
	return
}

// registers returns the registers named by words.
func registers(words ...string) (regs []isa.Register, err error) {
	regs = make([]isa.Register, len(words))
	for n, word := range words {
		regs[n], err = register(word)
		if err != nil {
			return
		}
	}
	return
}

// decodeMnemonic splits a mnemonic into its opcode and modifier. Only
// mnemonics that are not themselves in the opcode table are split, and only
// modifiable opcodes accept a suffix.
func decodeMnemonic(mnemonic string) (op isa.Opcode, mod isa.Modifier, err error) {
	op, ok := isa.LookupOpcode(mnemonic)
	if ok {
		return
	}

	if len(mnemonic) > 1 {
		base, suffix := mnemonic[:len(mnemonic)-1], mnemonic[len(mnemonic)-1:]
		op, ok = isa.LookupOpcode(base)
		if ok {
			mod, ok = isa.LookupModifier(suffix)
			if !ok || !op.Modifiable() {
				err = ErrModifier{Opcode: op, Suffix: suffix}
			}
			return
		}
	}

	err = ErrOpcodeUnknown(strings.ToUpper(mnemonic))
	return
}

// encode dispatches an instruction to the encoder of its format.
func (asm *Assembler) encode(op isa.Opcode, mod isa.Modifier, operands []string) (word isa.Word, err error) {
	format := op.Format()
	if len(operands) != format.Operands() {
		err = ErrOperandCount{Opcode: op, Want: format.Operands(), Got: len(operands)}
		return
	}

	switch format {
	case isa.FORMAT_ZERO:
		word = isa.MakeWordZero(op)
	case isa.FORMAT_ONE:
		word, err = asm.encodeBranch(op, operands[0])
	case isa.FORMAT_TWO:
		word, err = asm.encodeTwo(op, operands[0], operands[1])
	case isa.FORMAT_THREE:
		word, err = asm.encodeThree(op, mod, operands[0], operands[1], operands[2])
	case isa.FORMAT_MEMORY:
		word, err = asm.encodeMemory(op, operands[0], operands[1], operands[2])
	}

	return
}

// encodeBranch encodes a one-address instruction relative to the program counter.
func (asm *Assembler) encodeBranch(op isa.Opcode, label string) (word isa.Word, err error) {
	target, ok := asm.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	offset, err := RelativeOffset(target, asm.Pc, isa.OFFSET_BITS)
	if err != nil {
		return
	}

	word = isa.MakeWordBranch(op, offset)
	return
}

// encodeTwo encodes CMP, NOT and MOV.
func (asm *Assembler) encodeTwo(op isa.Opcode, first, last string) (word isa.Word, err error) {
	rs1, err := register(first)
	if err != nil {
		return
	}

	if isa.IsRegister(last) {
		var rs2 isa.Register
		rs2, err = register(last)
		if err != nil {
			return
		}
		word = isa.MakeWordTwo(op, rs1, rs2)
		return
	}

	imm, err := asm.immediate(last, isa.IMM18_BITS, false)
	if err != nil {
		return
	}

	word = isa.MakeWordTwoImm(op, rs1, imm)
	return
}

// encodeThree encodes the arithmetic and logic instructions. The modifier
// only applies to the immediate form.
func (asm *Assembler) encodeThree(op isa.Opcode, mod isa.Modifier, dst, src1, last string) (word isa.Word, err error) {
	regs, err := registers(dst, src1)
	if err != nil {
		return
	}

	if isa.IsRegister(last) {
		var src2 isa.Register
		src2, err = register(last)
		if err != nil {
			return
		}
		word = isa.MakeWordThree(op, regs[0], regs[1], src2)
		return
	}

	imm, err := asm.immediate(last, isa.IMM16_BITS, mod.Unsigned())
	if err != nil {
		return
	}

	word = isa.MakeWordThreeImm(op, mod, regs[0], regs[1], imm)
	return
}

// encodeMemory encodes LD and ST. A bracketed final operand selects the
// register-indirect form.
func (asm *Assembler) encodeMemory(op isa.Opcode, rd, rs1, last string) (word isa.Word, err error) {
	regs, err := registers(rd, rs1)
	if err != nil {
		return
	}

	if strings.HasPrefix(last, "[") || strings.HasSuffix(last, "]") {
		inner, ok := strings.CutPrefix(last, "[")
		if ok {
			inner, ok = strings.CutSuffix(inner, "]")
		}
		if !ok {
			err = ErrRegister(last)
			return
		}
		var index isa.Register
		index, err = register(inner)
		if err != nil {
			return
		}
		word = isa.MakeWordMemory(op, regs[0], regs[1], index)
		return
	}

	imm, err := asm.immediate(last, isa.IMM18_BITS, false)
	if err != nil {
		return
	}

	word = isa.MakeWordMemoryImm(op, regs[0], regs[1], imm)
	return
}
