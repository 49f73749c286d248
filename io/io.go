// Package io provides the byte stream collaborators for the μBF machine.
// A Source supplies input values for ',' and a Sink consumes output bytes
// from '.'. Adapters bridge to io.Reader and io.Writer streams, plus
// in-memory implementations for tests and sessions.
package io

// Source supplies input values to the machine.
//
// Next is wider than a byte on purpose: a Source backed by a byte stream
// can never yield an out-of-range value, but other collaborators can, and
// the machine faults on those rather than truncating.
type Source interface {
	// Next returns the next input value. ok is false at end of input.
	Next() (value uint32, ok bool)
}

// Sink consumes output bytes from the machine.
type Sink interface {
	// Send writes a single byte to the sink.
	Send(value byte) error
}
