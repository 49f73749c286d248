package machine

// Op is a single instruction symbol.
type Op byte

// The eight recognized instruction symbols. Any other character in an
// instruction stream is a comment.
const (
	OP_RIGHT  = Op('>') // move cell offset right
	OP_LEFT   = Op('<') // move cell offset left
	OP_INC    = Op('+') // increment current cell
	OP_DEC    = Op('-') // decrement current cell
	OP_OUTPUT = Op('.') // send current cell to output
	OP_INPUT  = Op(',') // read input into current cell
	OP_OPEN   = Op('[') // skip past partner if current cell is zero
	OP_CLOSE  = Op(']') // rejoin partner
)

// State is an execution engine dispatch state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_DISPATCH     = State(0)  // dispatch
	STATE_MOVE_RIGHT   = State(1)  // right
	STATE_MOVE_LEFT    = State(2)  // left
	STATE_INC          = State(3)  // inc
	STATE_DEC          = State(4)  // dec
	STATE_OUTPUT       = State(5)  // output
	STATE_INPUT        = State(6)  // input
	STATE_JUMP_ZERO    = State(7)  // jumpz
	STATE_JUMP_NONZERO = State(8)  // jumpnz
	STATE_ADVANCE      = State(9)  // advance
	STATE_FINISHED     = State(10) // finished
	STATE_SOURCE_ERROR = State(11) // srcerr
)
