// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"log"

	"github.com/ezrec/ubf/io"
)

// RecoverFunc is the optional out-of-range recovery hook. It receives
// the failing cell offset, and may supply a replacement initial offset
// to trigger a full restart of the invocation. Returning ok false
// declines, and the fault propagates as terminal.
type RecoverFunc func(offset int) (next int, ok bool)

// Engine executes instruction streams against a tape.
//
// Tape and Offset persist across Run calls; the instruction stream and
// its cursor live for one call only. Input and Output are the
// caller-supplied stream collaborators: a nil Input reads as an
// exhausted stream, a nil Output discards. An Engine must not be shared
// between concurrent Run calls.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	Tape   *Tape // Cell memory, threaded across invocations.
	Offset int   // Current cell offset.

	Input   io.Source   // Input collaborator for ','.
	Output  io.Sink     // Output collaborator for '.'.
	Recover RecoverFunc // Optional out-of-range recovery hook.
}

// NewEngine creates an engine with a fresh tape of the given cell count.
// A count of zero selects DEFAULT_CELLS.
func NewEngine(count uint) (eng *Engine) {
	eng = &Engine{
		Tape: NewTape(count),
	}

	return
}

// Run executes one instruction stream to termination.
//
// The result always carries the tape and final cell offset, so the
// caller can thread them into the next Run. A non-nil error is a fault
// (ErrOutOfRange or ErrInvalidInput) and pairs with OUTCOME_FAULT; tape
// effects committed before the fault remain.
//
// When a Recover hook is installed, an out-of-range fault is offered to
// it; a supplied replacement offset restarts the whole invocation from
// instruction position 0 against a pristine copy of the entry tape.
// Invalid input is never offered for recovery.
func (eng *Engine) Run(instructions string) (res Result, err error) {
	var snapshot *Tape
	if eng.Recover != nil {
		snapshot = eng.Tape.Clone()
	}

	for {
		res.Outcome, err = eng.run(instructions)

		var oor ErrOutOfRange
		if err != nil && errors.As(err, &oor) && eng.Recover != nil {
			next, ok := eng.Recover(int(oor))
			if ok {
				if eng.Verbose {
					log.Printf("machine: restart at offset %d", next)
				}
				eng.Tape = snapshot.Clone()
				eng.Offset = next
				err = nil
				continue
			}
		}

		res.Tape = eng.Tape
		res.Offset = eng.Offset
		return
	}
}

// run drives the dispatch state machine over one instruction stream.
func (eng *Engine) run(instructions string) (outcome Outcome, err error) {
	cursor := &Cursor{Source: instructions}
	state := STATE_DISPATCH

	for {
		switch state {
		case STATE_DISPATCH:
			op, ok := cursor.Current()
			if !ok {
				state = STATE_FINISHED
				break
			}
			if eng.Verbose {
				log.Printf("machine: %04d: %c", cursor.Pos, op)
			}
			switch Op(op) {
			case OP_RIGHT:
				state = STATE_MOVE_RIGHT
			case OP_LEFT:
				state = STATE_MOVE_LEFT
			case OP_INC:
				state = STATE_INC
			case OP_DEC:
				state = STATE_DEC
			case OP_OUTPUT:
				state = STATE_OUTPUT
			case OP_INPUT:
				state = STATE_INPUT
			case OP_OPEN:
				state = STATE_JUMP_ZERO
			case OP_CLOSE:
				state = STATE_JUMP_NONZERO
			default:
				// Comment character.
				state = STATE_ADVANCE
			}

		case STATE_MOVE_RIGHT:
			eng.Offset++
			err = eng.Tape.Check(eng.Offset)
			state = STATE_ADVANCE

		case STATE_MOVE_LEFT:
			eng.Offset--
			err = eng.Tape.Check(eng.Offset)
			state = STATE_ADVANCE

		case STATE_INC:
			err = eng.Tape.Increment(eng.Offset)
			state = STATE_ADVANCE

		case STATE_DEC:
			err = eng.Tape.Decrement(eng.Offset)
			state = STATE_ADVANCE

		case STATE_OUTPUT:
			var value byte
			value, err = eng.Tape.Read(eng.Offset)
			if err == nil && eng.Output != nil {
				err = eng.Output.Send(value)
			}
			state = STATE_ADVANCE

		case STATE_INPUT:
			var value uint32
			var ok bool
			if eng.Input != nil {
				value, ok = eng.Input.Next()
			}
			if !ok {
				// End of input reads as zero.
				value = 0
			}
			if value > 0xff {
				err = ErrInvalidInput(value)
				break
			}
			err = eng.Tape.Write(eng.Offset, byte(value))
			state = STATE_ADVANCE

		case STATE_JUMP_ZERO:
			var value byte
			value, err = eng.Tape.Read(eng.Offset)
			if err != nil {
				break
			}
			if value == 0 {
				if !cursor.SeekForward() {
					state = STATE_FINISHED
					break
				}
			}
			state = STATE_ADVANCE

		case STATE_JUMP_NONZERO:
			// Rejoin the matching '[' unconditionally; the zero test
			// happens there on redispatch.
			if !cursor.SeekBackward() {
				state = STATE_SOURCE_ERROR
				break
			}
			state = STATE_DISPATCH

		case STATE_ADVANCE:
			if cursor.Advance() {
				state = STATE_DISPATCH
			} else {
				state = STATE_FINISHED
			}

		case STATE_FINISHED:
			outcome = OUTCOME_FINISHED
			return

		case STATE_SOURCE_ERROR:
			outcome = OUTCOME_SOURCE_ERROR
			return
		}

		if err != nil {
			outcome = OUTCOME_FAULT
			return
		}
	}
}
