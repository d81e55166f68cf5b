// Package isa describes the TinyRISC instruction set.
//
// Every TinyRISC instruction is a single 32-bit word whose top five bits hold
// the opcode. The remaining 27 bits are laid out according to one of five
// instruction formats (zero-, one-, two-, three-address and load/store).
// Sixteen general-purpose registers R0-R15 are addressable with 4-bit codes.
//
// The package holds the immutable opcode and register tables, composes and
// decodes the instruction word bit fields, and renders words back to assembly
// text.
package isa
