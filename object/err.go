package object

import (
	"errors"

	"github.com/ezrec/tinyrisc/translate"
)

var f = translate.From

var (
	ErrPartialWord = errors.New(f("partial word at end of binary"))
)

// ErrWord is a text line that is not a 32 digit binary word.
type ErrWord struct {
	LineNo int
	Text   string
}

func (err ErrWord) Error() string {
	return f("line %d '%v' is not a machine word", err.LineNo, err.Text)
}
