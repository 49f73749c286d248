// Package machine implements the μBF byte machine.
//
// The machine executes an instruction stream of eight single-character
// operations over a fixed-capacity tape of unsigned byte cells. The Engine
// is an explicit finite-state dispatch loop: each instruction routes to an
// operation state, each operation state ends by advancing the instruction
// cursor, and the invocation terminates when a cursor move runs off either
// end of the stream. The tape and cell offset persist across invocations,
// which is how a sequence of independent Run calls behaves like one
// continuous program.
package machine
