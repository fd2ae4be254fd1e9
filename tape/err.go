package tape

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	ErrTapeSize  = errors.New(f("tape size invalid"))
	ErrTapeStart = errors.New(f("tape start outside of tape"))
	ErrOverflow  = errors.New(f("pointer out of bounds, overflow"))
	ErrUnderflow = errors.New(f("pointer out of bounds, underflow"))
)
