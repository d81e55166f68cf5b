package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOpcode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(23, Mnemonics())

	op, ok := LookupOpcode("ADD")
	assert.True(ok)
	assert.Equal(OP_ADD, op)

	op, ok = LookupOpcode("call")
	assert.True(ok)
	assert.Equal(OP_CALL, op)
	assert.Equal(FORMAT_ONE, op.Format())

	_, ok = LookupOpcode("ADDU")
	assert.False(ok)

	hlt, _ := LookupOpcode("HLT")
	end, _ := LookupOpcode("END")
	assert.Equal(hlt, end)
	assert.Equal(Opcode(0x1f), end)
}

func TestOpcodeFormat(t *testing.T) {
	assert := assert.New(t)

	expected := map[Format][]string{
		FORMAT_ZERO:   {"NOP", "RET", "HLT", "END"},
		FORMAT_ONE:    {"CALL", "B", "BEQ", "BGT"},
		FORMAT_TWO:    {"CMP", "NOT", "MOV"},
		FORMAT_THREE:  {"ADD", "SUB", "MUL", "DIV", "MOD", "AND", "OR", "LSL", "LSR", "ASR"},
		FORMAT_MEMORY: {"LD", "ST"},
	}

	total := 0
	for format, names := range expected {
		for _, name := range names {
			op, ok := LookupOpcode(name)
			assert.True(ok, name)
			assert.True(op.Valid(), name)
			assert.Equal(format, op.Format(), name)
			assert.Equal(format == FORMAT_THREE, op.Modifiable(), name)
			total++
		}
	}
	assert.Equal(Mnemonics(), total)

	assert.False(Opcode(21).Valid())
	assert.False(Opcode(30).Valid())
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ADD", OP_ADD.String())
	assert.Equal("CALL", OP_CALL.String())
	assert.Equal("RET", OP_RET.String())
	assert.Equal("HLT", OP_END.String())
	assert.Equal("Opcode(25)", Opcode(25).String())

	assert.Equal("load-store", FORMAT_MEMORY.String())
	assert.Equal(3, FORMAT_MEMORY.Operands())
	assert.Equal(0, FORMAT_ZERO.Operands())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range REG_COUNT {
		reg, ok := LookupRegister(Register(n).String())
		assert.True(ok)
		assert.Equal(Register(n), reg)
	}

	reg, ok := LookupRegister("r15")
	assert.True(ok)
	assert.Equal(REG_RA, reg)

	assert.True(IsRegister("R14"))
	assert.False(IsRegister("R16"))
	assert.False(IsRegister("5"))
	assert.False(IsRegister("[R1]"))
}

func TestModifier(t *testing.T) {
	assert := assert.New(t)

	mod, ok := LookupModifier("u")
	assert.True(ok)
	assert.Equal(MOD_U, mod)
	assert.True(mod.Unsigned())

	mod, ok = LookupModifier("H")
	assert.True(ok)
	assert.Equal(MOD_H, mod)

	_, ok = LookupModifier("X")
	assert.False(ok)

	assert.False(MOD_NONE.Unsigned())
	assert.Equal("", MOD_NONE.String())
}
