// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl threads machine state across successive invocations.
//
// A Session owns one tape and cell offset. Each Eval runs one complete
// instruction stream against them; on a Finished outcome the mutated tape
// and offset carry into the next Eval, which is how independent lines
// behave like one continuous program. Any other outcome abandons the
// session.
//
// Because every Eval is a whole invocation, a loop must close its bracket
// on the line that opened it. That is a property of this session protocol,
// not a limit of the machine.
package repl

import (
	"iter"

	"github.com/ezrec/ubf/machine"
)

// Session is a sequence of invocations sharing one tape and cell offset.
// Invocations are serialized; a Session must not be shared between
// goroutines.
type Session struct {
	Verbose bool // Set to enable verbose machine logging.

	Machine *machine.Engine // The machine running each invocation.

	lineno int
	closed bool
}

// NewSession creates a session over a fresh tape of the given cell count.
// A count of zero selects machine.DEFAULT_CELLS.
func NewSession(count uint) (session *Session) {
	session = &Session{
		Machine: machine.NewEngine(count),
	}

	return
}

// LineNo returns the number of lines evaluated so far.
func (s *Session) LineNo() int {
	return s.lineno
}

// Closed reports whether the session has been abandoned.
func (s *Session) Closed() bool {
	return s.closed
}

// Eval runs one instruction stream against the session's tape and offset.
// A fault closes the session and is wrapped with the session line number;
// a source error closes the session with the result carrying the tag.
func (s *Session) Eval(line string) (res machine.Result, err error) {
	if s.closed {
		err = ErrSessionClosed
		return
	}

	s.lineno++
	s.Machine.Verbose = s.Verbose

	res, err = s.Machine.Run(line)
	if err != nil {
		s.closed = true
		err = &ErrLine{LineNo: s.lineno, Err: err}
		return
	}
	if res.Outcome != machine.OUTCOME_FINISHED {
		s.closed = true
	}

	return
}

// Run evaluates lines in order, yielding each result, and stops when the
// lines are exhausted or the session closes.
func (s *Session) Run(lines iter.Seq[string]) iter.Seq2[machine.Result, error] {
	return func(yield func(machine.Result, error) bool) {
		for line := range lines {
			res, err := s.Eval(line)
			if !yield(res, err) {
				return
			}
			if s.closed {
				return
			}
		}
	}
}
