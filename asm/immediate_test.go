package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyrisc/isa"
)

func TestParseInteger(t *testing.T) {
	assert := assert.New(t)

	valid := map[string]int64{
		"0":      0,
		"10":     10,
		"-10":    -10,
		"+7":     7,
		"010":    10,
		"0x1F":   31,
		"0X1f":   31,
		"0b101":  5,
		"0B11":   3,
		"0o17":   15,
		"0O7":    7,
		"-0x10":  -16,
		"0x1_00": 256,
	}
	for text, expected := range valid {
		value, err := ParseInteger(text)
		assert.NoError(err, text)
		assert.Equal(expected, value, text)
	}

	for _, text := range []string{"", "abc", "0x", "--1", "+-1", "12a", "1_0", "R1", "0x10000000000000000"} {
		_, err := ParseInteger(text)
		assert.Equal(ErrParseNumber(text), err, text)
		assert.True(errors.Is(err, ErrMalformedOperands), text)
	}
}

func TestSigned(t *testing.T) {
	assert := assert.New(t)

	field, err := Signed(-1, 16)
	assert.NoError(err)
	assert.Equal(uint32(0xffff), field)

	field, err = Signed(32767, 16)
	assert.NoError(err)
	assert.Equal(uint32(0x7fff), field)

	field, err = Signed(-32768, 16)
	assert.NoError(err)
	assert.Equal(uint32(0x8000), field)

	_, err = Signed(32768, 16)
	assert.Equal(ErrRange{Value: 32768, Bits: 16}, err)
	assert.True(errors.Is(err, ErrValueOutOfRange))

	_, err = Signed(-32769, 16)
	assert.True(errors.Is(err, ErrValueOutOfRange))

	field, err = Signed(-131072, 18)
	assert.NoError(err)
	assert.Equal(uint32(0x20000), field)
}

func TestUnsigned(t *testing.T) {
	assert := assert.New(t)

	field, err := Unsigned(65535, 16)
	assert.NoError(err)
	assert.Equal(uint32(0xffff), field)

	_, err = Unsigned(65536, 16)
	assert.Equal(ErrRange{Value: 65536, Bits: 16, Unsigned: true}, err)

	_, err = Unsigned(-1, 16)
	assert.True(errors.Is(err, ErrValueOutOfRange))
}

func TestParseLiteral(t *testing.T) {
	assert := assert.New(t)

	field, err := ParseLiteral("-2", 18)
	assert.NoError(err)
	assert.Equal(uint32(0x3fffe), field)

	_, err = ParseLiteral("0x20000", 18)
	assert.True(errors.Is(err, ErrValueOutOfRange))

	_, err = ParseLiteral("nope", 18)
	assert.True(errors.Is(err, ErrMalformedOperands))
}

func TestRelativeOffset(t *testing.T) {
	assert := assert.New(t)

	field, err := RelativeOffset(0, 2, isa.OFFSET_BITS)
	assert.NoError(err)
	assert.Equal(uint32(0x7fffffe), field)
	assert.Equal(int64(-2), isa.SignExtend(field, isa.OFFSET_BITS))

	field, err = RelativeOffset(10, 3, isa.OFFSET_BITS)
	assert.NoError(err)
	assert.Equal(uint32(7), field)

	_, err = RelativeOffset(1<<26, 0, isa.OFFSET_BITS)
	assert.True(errors.Is(err, ErrValueOutOfRange))
}

func FuzzSigned(f *testing.F) {
	for _, bits := range []uint8{2, 16, 18, 27, 32} {
		f.Add(int64(0), bits)
		f.Add(int64(-1), bits)
		f.Add(int64(1)<<(bits-1)-1, bits)
		f.Add(-(int64(1) << (bits - 1)), bits)
	}

	f.Fuzz(func(t *testing.T, value int64, width uint8) {
		assert := assert.New(t)

		bits := int(width%31) + 2
		limit := int64(1) << (bits - 1)

		field, err := Signed(value, bits)
		if value < -limit || value >= limit {
			assert.True(errors.Is(err, ErrValueOutOfRange))
			return
		}

		assert.NoError(err)
		assert.Zero(uint64(field) >> bits)
		assert.Equal(value, isa.SignExtend(field, bits))
	})
}
