package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubf/io"
)

// The classic "Hello World!" construction.
const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
	">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func TestEngineEmpty(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	res, err := eng.Run("")

	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(0, res.Offset)
	assert.Equal(make([]byte, 8), res.Tape.Cells)
}

func TestEngineArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		cell   byte
	}){
		{"inc", "+", 1},
		{"dec_wraps", "-", 255},
		{"inc_wraps", "-+", 0},
		{"mixed", "+++--", 1},
	}

	for _, entry := range table {
		eng := NewEngine(8)
		res, err := eng.Run(entry.source)

		assert.NoError(err, entry.name)
		assert.Equal(OUTCOME_FINISHED, res.Outcome, entry.name)
		assert.Equal(entry.cell, res.Tape.Cells[0], entry.name)
		assert.Equal(0, res.Offset, entry.name)
	}
}

func TestEngineComments(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	res, err := eng.Run("add one: + (and nothing else)\n")

	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(1), res.Tape.Cells[0])
}

func TestEngineSourceError(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	res, err := eng.Run("]")

	assert.NoError(err)
	assert.Equal(OUTCOME_SOURCE_ERROR, res.Outcome)
}

func TestEngineClearLoop(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	eng.Tape.Cells[0] = 5
	res, err := eng.Run("[-]")

	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(0), res.Tape.Cells[0])
}

func TestEngineUnmatchedOpen(t *testing.T) {
	assert := assert.New(t)

	// Running off the end of the stream during a forward scan is the
	// normal termination path, not a fault.
	eng := NewEngine(8)
	res, err := eng.Run("[+++")

	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(0), res.Tape.Cells[0])
}

func TestEngineThreading(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)

	res, err := eng.Run("+")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)

	res, err = eng.Run("+")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(2), res.Tape.Cells[0])

	// The result can also seed a fresh engine.
	next := &Engine{Tape: res.Tape, Offset: res.Offset}
	res, err = next.Run("+")
	assert.NoError(err)
	assert.Equal(byte(3), res.Tape.Cells[0])
}

func TestEngineMoveBounds(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(2)
	res, err := eng.Run(">>>")

	assert.Equal(ErrOutOfRange(2), err)
	assert.Equal(OUTCOME_FAULT, res.Outcome)

	eng = NewEngine(2)
	res, err = eng.Run("<")

	assert.Equal(ErrOutOfRange(-1), err)
	assert.Equal(OUTCOME_FAULT, res.Outcome)
}

func TestEngineRecover(t *testing.T) {
	assert := assert.New(t)

	var faulted []int
	eng := NewEngine(8)
	eng.Recover = func(offset int) (next int, ok bool) {
		faulted = append(faulted, offset)
		return 1, true
	}

	// '<' from offset 0 faults; the restart from offset 1 succeeds,
	// and the cursor ends back at 0.
	res, err := eng.Run("<")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(0, res.Offset)
	assert.Equal([]int{-1}, faulted)
}

func TestEngineRecoverRestartsFromScratch(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	eng.Recover = func(offset int) (next int, ok bool) {
		return 1, true
	}

	// The increments before the fault must not survive into the retry:
	// the restart runs against the entry tape, so the three '+' commit
	// exactly once, at offset 1 after the '<' move.
	res, err := eng.Run("+++<+++")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal([]byte{3, 3, 0, 0, 0, 0, 0, 0}, res.Tape.Cells)
	assert.Equal(0, res.Offset)
}

func TestEngineRecoverDeclined(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	eng.Recover = func(offset int) (next int, ok bool) {
		return
	}

	res, err := eng.Run("<")
	assert.Equal(ErrOutOfRange(-1), err)
	assert.Equal(OUTCOME_FAULT, res.Outcome)
}

func TestEngineInput(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(8)
	eng.Input = &io.Bytes{Data: []byte{42, 7}}

	res, err := eng.Run(",>,")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(42), res.Tape.Cells[0])
	assert.Equal(byte(7), res.Tape.Cells[1])
}

func TestEngineInputExhausted(t *testing.T) {
	assert := assert.New(t)

	// End of input reads as zero, for a supplied source and for none.
	eng := NewEngine(8)
	eng.Input = &io.Bytes{}
	eng.Tape.Cells[0] = 9

	res, err := eng.Run(",")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal(byte(0), res.Tape.Cells[0])

	eng = NewEngine(8)
	eng.Tape.Cells[0] = 9

	res, err = eng.Run(",")
	assert.NoError(err)
	assert.Equal(byte(0), res.Tape.Cells[0])
}

type wideSource struct {
	value uint32
}

func (ws *wideSource) Next() (value uint32, ok bool) {
	return ws.value, true
}

func TestEngineInvalidInput(t *testing.T) {
	assert := assert.New(t)

	recovered := false
	eng := NewEngine(8)
	eng.Input = &wideSource{value: 0x100}
	eng.Recover = func(offset int) (next int, ok bool) {
		recovered = true
		return 0, true
	}

	res, err := eng.Run(",")
	assert.Equal(ErrInvalidInput(0x100), err)
	assert.ErrorIs(err, ErrInvalidInput(0))
	assert.Equal(OUTCOME_FAULT, res.Outcome)
	assert.False(recovered) // invalid input is never retried
}

func TestEngineOutput(t *testing.T) {
	assert := assert.New(t)

	output := &io.Buffer{}
	eng := NewEngine(8)
	eng.Output = output
	eng.Tape.Cells[0] = 'A'

	res, err := eng.Run(".+.")
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal("AB", output.String())
}

func TestEngineHelloWorld(t *testing.T) {
	assert := assert.New(t)

	output := &io.Buffer{}
	eng := NewEngine(0)
	eng.Output = output

	res, err := eng.Run(helloWorld)
	assert.NoError(err)
	assert.Equal(OUTCOME_FINISHED, res.Outcome)
	assert.Equal("Hello World!\n", output.String())
}
