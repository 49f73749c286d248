// Package program loads and prepares μBF program text.
//
// Program files may carry '#' comments running to end of line, and
// optionally compile-time repeat groups of the form op$(expr), where expr
// is a starlark expression: "+$(8*8)" expands to 64 '+' instructions.
// Both are purely textual rewrites performed before the machine ever sees
// the stream; machine semantics are untouched.
package program

import (
	"bufio"
	"io"
	"strings"
)

// Load reads program text from r, dropping '#' comments to end of line.
func Load(r io.Reader) (text string, err error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if n := strings.IndexByte(line, '#'); n >= 0 {
			line = line[:n]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	text = sb.String()
	return
}
