// Package asm implements the two pass TinyRISC assembler.
//
// The first pass resolves every 'label:' to the index of the instruction it
// names. The second pass encodes each instruction line into a single 32-bit
// word, counting instructions as it goes so that branch targets can be
// encoded relative to the instruction following the branch.
//
// Lines that fail to assemble produce a Result carrying an error instead of a
// word; assembly always continues with the next line. Immediates may be
// written as '$(...)' expressions which are evaluated at assembly time, with
// the labels, the program counter PC, and any predefined values in scope.
package asm
