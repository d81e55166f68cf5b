// Package object reads and writes assembled TinyRISC programs.
//
// Two artifacts are supported: the '.mc' text form, one word per line as 32
// binary digits, and the '.bin' form, four big-endian bytes per word.
package object

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/tinyrisc/isa"
)

const WORD_BYTES = isa.WORD_BITS / 8

// WriteText writes each word as a line of binary digits.
func WriteText(w io.Writer, words iter.Seq[isa.Word]) (err error) {
	bw := bufio.NewWriter(w)
	for word := range words {
		_, err = fmt.Fprintln(bw, word.String())
		if err != nil {
			return
		}
	}

	return bw.Flush()
}

// WriteBinary writes each word as four big-endian bytes.
func WriteBinary(w io.Writer, words iter.Seq[isa.Word]) (err error) {
	bw := bufio.NewWriter(w)
	var buf [WORD_BYTES]byte
	for word := range words {
		binary.BigEndian.PutUint32(buf[:], uint32(word))
		_, err = bw.Write(buf[:])
		if err != nil {
			return
		}
	}

	return bw.Flush()
}

// ReadText reads a '.mc' text artifact. Blank lines are ignored.
func ReadText(r io.Reader) (words []isa.Word, err error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}
		if len(text) != isa.WORD_BITS {
			err = ErrWord{LineNo: lineno, Text: text}
			return
		}
		var value uint64
		value, err = strconv.ParseUint(text, 2, isa.WORD_BITS)
		if err != nil {
			err = ErrWord{LineNo: lineno, Text: text}
			return
		}
		words = append(words, isa.Word(value))
	}
	err = scanner.Err()

	return
}

// ReadBinary reads a '.bin' artifact.
func ReadBinary(r io.Reader) (words []isa.Word, err error) {
	var buf [WORD_BYTES]byte
	for {
		_, err = io.ReadFull(r, buf[:])
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrPartialWord
			return
		}
		if err != nil {
			return
		}
		words = append(words, isa.Word(binary.BigEndian.Uint32(buf[:])))
	}
}
