package asm

import (
	"strconv"
	"strings"
)

// ParseInteger parses a decimal, '0x' hex, '0b' binary or '0o' octal literal,
// with an optional sign. A leading zero on a decimal literal is not octal.
func ParseInteger(text string) (value int64, err error) {
	digits := strings.TrimLeft(text, "+-")
	if len(text)-len(digits) > 1 {
		err = ErrParseNumber(text)
		return
	}

	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			base = 0
		}
	}

	value, err = strconv.ParseInt(text, base, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	return
}

// Signed encodes value as a two's-complement field of the given width.
func Signed(value int64, bits int) (field uint32, err error) {
	limit := int64(1) << (bits - 1)
	if value < -limit || value >= limit {
		err = ErrRange{Value: value, Bits: bits}
		return
	}

	if value < 0 {
		value += int64(1) << bits
	}
	field = uint32(value)

	return
}

// Unsigned encodes value as an unsigned field of the given width.
func Unsigned(value int64, bits int) (field uint32, err error) {
	if value < 0 || value >= int64(1)<<bits {
		err = ErrRange{Value: value, Bits: bits, Unsigned: true}
		return
	}

	field = uint32(value)

	return
}

// ParseLiteral parses text and encodes it as a signed field.
func ParseLiteral(text string, bits int) (field uint32, err error) {
	value, err := ParseInteger(text)
	if err != nil {
		return
	}

	return Signed(value, bits)
}

// RelativeOffset encodes the distance from pc to target as a signed field.
func RelativeOffset(target, pc int, bits int) (field uint32, err error) {
	return Signed(int64(target)-int64(pc), bits)
}
