package program

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	REPEAT_LIMIT = 1 << 20 // Maximum repeat count for one $(...) group.
)

// Expand rewrites every op$(expr) repeat group into expr copies of the
// character immediately preceding the group. A '$' without a preceding
// character and a following '(' is passed through untouched.
func Expand(src string) (text string, err error) {
	var sb strings.Builder

	i := 0
	for i < len(src) {
		c := src[i]
		if i+2 >= len(src) || src[i+1] != '$' || src[i+2] != '(' {
			sb.WriteByte(c)
			i++
			continue
		}

		// Find the balancing close paren of the group.
		depth := 0
		j := i + 2
		for ; j < len(src); j++ {
			switch src[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			err = ErrExpression(src[i+3:])
			return
		}

		var count int64
		count, err = parenEval(src[i+3 : j])
		if err != nil {
			return
		}
		if count < 0 || count > REPEAT_LIMIT {
			err = ErrRepeat(count)
			return
		}

		for range count {
			sb.WriteByte(c)
		}
		i = j + 1
	}

	text = sb.String()
	return
}

// parenEval does expansion-time $(...) evaluations
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}
