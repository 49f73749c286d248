package machine

// Bracket matching. A scan counts nesting depth starting from the bracket
// under the cursor: the first character examined is that bracket itself,
// so depth cannot return to zero before a true partner.

// SeekForward advances the cursor from a '[' to its matching ']'.
// Returns false when the stream is exhausted before a match.
func (c *Cursor) SeekForward() (ok bool) {
	depth := 0
	for {
		switch Op(c.Source[c.Pos]) {
		case OP_OPEN:
			depth++
		case OP_CLOSE:
			depth--
			if depth == 0 {
				return true
			}
		}

		if !c.Advance() {
			return
		}
	}
}

// SeekBackward retreats the cursor from a ']' to its matching '['.
// Returns false when the scan underflows the start of the stream.
func (c *Cursor) SeekBackward() (ok bool) {
	depth := 0
	for {
		switch Op(c.Source[c.Pos]) {
		case OP_CLOSE:
			depth++
		case OP_OPEN:
			depth--
			if depth == 0 {
				return true
			}
		}

		if !c.Retreat() {
			return
		}
	}
}
