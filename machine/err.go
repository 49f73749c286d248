package machine

import (
	"github.com/ezrec/ubf/translate"
)

var f = translate.From

// ErrOutOfRange reports a cell offset outside the tape bounds. The value
// is the failing offset.
type ErrOutOfRange int

func (err ErrOutOfRange) Error() string {
	return f("cell offset %d out of range", int(err))
}

func (err ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfRange)
	return
}

// ErrInvalidInput reports an input value outside the byte range. The
// value is the offending input.
type ErrInvalidInput uint32

func (err ErrInvalidInput) Error() string {
	return f("input value 0x%x is not a byte", uint32(err))
}

func (err ErrInvalidInput) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidInput)
	return
}
