package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzCursorSeek checks the bracket partnering laws on arbitrary program
// text: a successful forward scan from a '[' always lands on a ']', the
// backward scan from that ']' returns to the same '[', and nesting is
// preserved because no shallower bracket lies between partners.
func FuzzCursorSeek(f *testing.F) {
	f.Add("[-]")
	f.Add("[[--]+]")
	f.Add("][")
	f.Add("+[>[,.]<]-")
	f.Add("[[[")
	f.Add("]]]")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		for pos := range len(source) {
			if Op(source[pos]) != OP_OPEN {
				continue
			}

			cursor := &Cursor{Source: source, Pos: pos}
			if !cursor.SeekForward() {
				// Unmatched '[': the scan must have walked to the end.
				assert.Equal(len(source)-1, cursor.Pos)
				continue
			}

			match := cursor.Pos
			assert.Equal(OP_CLOSE, Op(source[match]))
			assert.Greater(match, pos)

			// Round trip back to the same '['.
			assert.True(cursor.SeekBackward())
			assert.Equal(pos, cursor.Pos)

			// Nesting preserved: brackets strictly between the partners
			// balance out.
			depth := 0
			for n := pos + 1; n < match; n++ {
				switch Op(source[n]) {
				case OP_OPEN:
					depth++
				case OP_CLOSE:
					depth--
				}
				assert.GreaterOrEqual(depth, 0)
			}
			assert.Equal(0, depth)
		}
	})
}
