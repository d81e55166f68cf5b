// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strings"
)

// Opcode is a 5-bit TinyRISC operation code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0)  // ADD
	OP_SUB  = Opcode(1)  // SUB
	OP_MUL  = Opcode(2)  // MUL
	OP_DIV  = Opcode(3)  // DIV
	OP_MOD  = Opcode(4)  // MOD
	OP_CMP  = Opcode(5)  // CMP
	OP_AND  = Opcode(6)  // AND
	OP_OR   = Opcode(7)  // OR
	OP_NOT  = Opcode(8)  // NOT
	OP_MOV  = Opcode(9)  // MOV
	OP_LSL  = Opcode(10) // LSL
	OP_LSR  = Opcode(11) // LSR
	OP_ASR  = Opcode(12) // ASR
	OP_NOP  = Opcode(13) // NOP
	OP_LD   = Opcode(14) // LD
	OP_ST   = Opcode(15) // ST
	OP_BEQ  = Opcode(16) // BEQ
	OP_BGT  = Opcode(17) // BGT
	OP_B    = Opcode(18) // B
	OP_CALL = Opcode(19) // CALL
	OP_RET  = Opcode(20) // RET
	OP_HLT  = Opcode(31) // HLT
	OP_END  = Opcode(31) // END
)

// Format is an instruction operand layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_ZERO   = Format(0) // zero-address
	FORMAT_ONE    = Format(1) // one-address
	FORMAT_TWO    = Format(2) // two-address
	FORMAT_THREE  = Format(3) // three-address
	FORMAT_MEMORY = Format(4) // load-store
)

// Operands returns the number of operands written for the format.
func (fm Format) Operands() int {
	switch fm {
	case FORMAT_ONE:
		return 1
	case FORMAT_TWO:
		return 2
	case FORMAT_THREE, FORMAT_MEMORY:
		return 3
	}

	return 0
}

// opcodeMap maps upper case mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"MUL":  OP_MUL,
	"DIV":  OP_DIV,
	"MOD":  OP_MOD,
	"CMP":  OP_CMP,
	"AND":  OP_AND,
	"OR":   OP_OR,
	"NOT":  OP_NOT,
	"MOV":  OP_MOV,
	"LSL":  OP_LSL,
	"LSR":  OP_LSR,
	"ASR":  OP_ASR,
	"NOP":  OP_NOP,
	"LD":   OP_LD,
	"ST":   OP_ST,
	"BEQ":  OP_BEQ,
	"BGT":  OP_BGT,
	"B":    OP_B,
	"CALL": OP_CALL,
	"RET":  OP_RET,
	"HLT":  OP_HLT,
	"END":  OP_END,
}

// formatMap classifies each opcode.
var formatMap = map[Opcode]Format{
	OP_NOP:  FORMAT_ZERO,
	OP_RET:  FORMAT_ZERO,
	OP_HLT:  FORMAT_ZERO,
	OP_CALL: FORMAT_ONE,
	OP_B:    FORMAT_ONE,
	OP_BEQ:  FORMAT_ONE,
	OP_BGT:  FORMAT_ONE,
	OP_CMP:  FORMAT_TWO,
	OP_NOT:  FORMAT_TWO,
	OP_MOV:  FORMAT_TWO,
	OP_ADD:  FORMAT_THREE,
	OP_SUB:  FORMAT_THREE,
	OP_MUL:  FORMAT_THREE,
	OP_DIV:  FORMAT_THREE,
	OP_MOD:  FORMAT_THREE,
	OP_AND:  FORMAT_THREE,
	OP_OR:   FORMAT_THREE,
	OP_LSL:  FORMAT_THREE,
	OP_LSR:  FORMAT_THREE,
	OP_ASR:  FORMAT_THREE,
	OP_LD:   FORMAT_MEMORY,
	OP_ST:   FORMAT_MEMORY,
}

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// Mnemonics returns the number of mnemonics known to the opcode table.
func Mnemonics() int {
	return len(opcodeMap)
}

// Valid returns true if the opcode is assigned.
func (op Opcode) Valid() bool {
	_, ok := formatMap[op]
	return ok
}

// Format returns the operand layout of the opcode.
func (op Opcode) Format() Format {
	return formatMap[op]
}

// Modifiable returns true if the opcode accepts a modifier suffix.
func (op Opcode) Modifiable() bool {
	return op.Format() == FORMAT_THREE
}
