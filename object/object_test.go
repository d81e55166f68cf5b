package object

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyrisc/isa"
)

var testWords = []isa.Word{
	isa.MakeWordThree(isa.OP_ADD, 1, 2, 3),
	isa.MakeWordBranch(isa.OP_BEQ, 0x7fffffe),
	isa.MakeWordZero(isa.OP_HLT),
}

func TestWriteText(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	err := WriteText(buf, slices.Values(testWords))
	assert.NoError(err)

	assert.Equal(strings.Join([]string{
		"00000000010010001100000000000000",
		"10000111111111111111111111111110",
		"11111000000000000000000000000000",
		"",
	}, "\n"), buf.String())

	words, err := ReadText(buf)
	assert.NoError(err)
	assert.Equal(testWords, words)
}

func TestWriteBinary(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	err := WriteBinary(buf, slices.Values(testWords))
	assert.NoError(err)

	assert.Equal([]byte{
		0x00, 0x48, 0xc0, 0x00,
		0x87, 0xff, 0xff, 0xfe,
		0xf8, 0x00, 0x00, 0x00,
	}, buf.Bytes())

	words, err := ReadBinary(buf)
	assert.NoError(err)
	assert.Equal(testWords, words)
}

func TestReadBinaryPartial(t *testing.T) {
	assert := assert.New(t)

	words, err := ReadBinary(bytes.NewReader([]byte{0xf8, 0, 0, 0, 0x12}))
	assert.ErrorIs(err, ErrPartialWord)
	assert.Equal([]isa.Word{isa.MakeWordZero(isa.OP_HLT)}, words)

	words, err = ReadBinary(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Empty(words)
}

func TestReadTextInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadText(strings.NewReader("\n0101\n"))
	assert.Equal(ErrWord{LineNo: 2, Text: "0101"}, err)

	_, err = ReadText(strings.NewReader(strings.Repeat("2", 32)))
	var werr ErrWord
	assert.True(errors.As(err, &werr))
	assert.Equal(1, werr.LineNo)
}
