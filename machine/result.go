package machine

// Outcome is the terminal classification of one invocation.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	// OUTCOME_FINISHED: the instruction stream was exhausted normally.
	OUTCOME_FINISHED = Outcome(0) // finished
	// OUTCOME_SOURCE_ERROR: an unmatched ']' drove the instruction
	// cursor past the start of the stream.
	OUTCOME_SOURCE_ERROR = Outcome(1) // source error
	// OUTCOME_FAULT: the invocation aborted with an error.
	OUTCOME_FAULT = Outcome(2) // fault
)

// Result is the externally visible state of one invocation: the outcome
// tag plus the tape and cell offset. The tape and offset are carried
// regardless of the tag, so a caller can thread them into the next
// invocation.
type Result struct {
	Outcome Outcome // Terminal classification.
	Tape    *Tape   // Cell memory after the invocation.
	Offset  int     // Cell offset after the invocation.
}
