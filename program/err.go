package program

import (
	"github.com/ezrec/ubf/translate"
)

var f = translate.From

// ErrExpression reports a $(...) group that is not a valid expression.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrExpression)
	return
}

// ErrRepeat reports a $(...) repeat count outside the usable range.
type ErrRepeat int64

func (err ErrRepeat) Error() string {
	return f("repeat count %v out of range", int64(err))
}

func (err ErrRepeat) Is(target error) (ok bool) {
	_, ok = target.(ErrRepeat)
	return
}
