package machine

// Cursor walks one invocation's instruction stream.
//
// The stream is immutable; only the position moves. Advance and Retreat
// report false when the move would leave the stream; the Engine turns an
// exhausted Advance into normal termination and an underflowed Retreat
// into a source error.
type Cursor struct {
	Source string // Instruction stream for this invocation.
	Pos    int    // Current instruction position.
}

// Current returns the instruction at the current position without moving.
// ok is false when the position is outside the stream.
func (c *Cursor) Current() (op byte, ok bool) {
	if c.Pos < 0 || c.Pos >= len(c.Source) {
		return
	}

	return c.Source[c.Pos], true
}

// Advance moves one instruction forward. Returns false when this would
// pass the last instruction in the stream.
func (c *Cursor) Advance() (ok bool) {
	if c.Pos >= len(c.Source)-1 {
		return
	}

	c.Pos++
	return true
}

// Retreat moves one instruction backward. Returns false when this would
// pass the start of the stream.
func (c *Cursor) Retreat() (ok bool) {
	if c.Pos <= 0 {
		return
	}

	c.Pos--
	return true
}
