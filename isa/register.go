package isa

import (
	"fmt"
	"strings"
)

// Register is a 4-bit general purpose register code.
type Register int

const (
	REG_COUNT = 16

	REG_SP = Register(14) // Stack pointer by convention.
	REG_RA = Register(15) // Return address by convention.
)

// registerMap maps upper case register names to codes.
var registerMap = func() map[string]Register {
	regs := make(map[string]Register, REG_COUNT)
	for n := range REG_COUNT {
		regs[fmt.Sprintf("R%d", n)] = Register(n)
	}
	return regs
}()

// LookupRegister returns the register for a name, ignoring case.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToUpper(name)]
	return
}

// IsRegister returns true if the word names a register.
func IsRegister(word string) bool {
	_, ok := LookupRegister(word)
	return ok
}

func (reg Register) String() string {
	return fmt.Sprintf("R%d", int(reg))
}

// Modifier is the 2-bit variant selector of three-address immediates.
type Modifier int

const (
	MOD_NONE = Modifier(0) // No suffix.
	MOD_U    = Modifier(1) // 'U' suffix.
	MOD_H    = Modifier(2) // 'H' suffix.
)

// LookupModifier returns the modifier for a mnemonic suffix, ignoring case.
func LookupModifier(suffix string) (mod Modifier, ok bool) {
	switch strings.ToUpper(suffix) {
	case "U":
		return MOD_U, true
	case "H":
		return MOD_H, true
	}
	return MOD_NONE, false
}

// Unsigned returns true if the modifier reads its immediate as unsigned.
func (mod Modifier) Unsigned() bool {
	return mod == MOD_U || mod == MOD_H
}

func (mod Modifier) String() string {
	switch mod {
	case MOD_U:
		return "U"
	case MOD_H:
		return "H"
	}
	return ""
}
