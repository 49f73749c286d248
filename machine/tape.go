package machine

const (
	DEFAULT_CELLS = 30000 // Default tape capacity, in cells.
)

// Tape is the byte memory of the machine.
//
// Cells are unsigned bytes with wrap-around arithmetic: incrementing 255
// yields 0 and decrementing 0 yields 255, never a fault. The capacity is
// fixed at creation; only cell offsets outside [0, Len) are faults.
type Tape struct {
	Cells []byte
}

// NewTape creates a tape with the given cell count. A count of zero
// selects DEFAULT_CELLS.
func NewTape(count uint) (tape *Tape) {
	if count == 0 {
		count = DEFAULT_CELLS
	}
	tape = &Tape{
		Cells: make([]byte, count),
	}

	return
}

// Len returns the tape capacity, in cells.
func (t *Tape) Len() int {
	return len(t.Cells)
}

// Check validates a cell offset against the tape bounds.
func (t *Tape) Check(offset int) (err error) {
	if offset < 0 || offset >= len(t.Cells) {
		err = ErrOutOfRange(offset)
	}

	return
}

// Read returns the cell value at offset.
func (t *Tape) Read(offset int) (value byte, err error) {
	err = t.Check(offset)
	if err != nil {
		return
	}

	value = t.Cells[offset]
	return
}

// Write replaces the cell value at offset.
func (t *Tape) Write(offset int, value byte) (err error) {
	err = t.Check(offset)
	if err != nil {
		return
	}

	t.Cells[offset] = value
	return
}

// Increment adds one to the cell at offset, wrapping 255 to 0.
func (t *Tape) Increment(offset int) (err error) {
	err = t.Check(offset)
	if err != nil {
		return
	}

	t.Cells[offset]++
	return
}

// Decrement subtracts one from the cell at offset, wrapping 0 to 255.
func (t *Tape) Decrement(offset int) (err error) {
	err = t.Check(offset)
	if err != nil {
		return
	}

	t.Cells[offset]--
	return
}

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() (tape *Tape) {
	tape = &Tape{
		Cells: append([]byte(nil), t.Cells...),
	}

	return
}

// Reset zeroes every cell.
func (t *Tape) Reset() {
	clear(t.Cells)
}
