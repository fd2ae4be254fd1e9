package cpu

import (
	"fmt"
)

// CodeOp is an instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_RIGHT  = CodeOp(0) // >
	OP_LEFT   = CodeOp(1) // <
	OP_INC    = CodeOp(2) // +
	OP_DEC    = CodeOp(3) // -
	OP_OUTPUT = CodeOp(4) // .
	OP_INPUT  = CodeOp(5) // ,
	OP_BEGIN  = CodeOp(6) // [
	OP_END    = CodeOp(7) // ]
	OP_HALT   = CodeOp(8) // halt
)

// TARGET_NONE is the target of a '[' whose ']' has not been seen yet.
const TARGET_NONE = -1

// CodeOpOf returns the operation for a source symbol.
func CodeOpOf(symbol rune) (op CodeOp, ok bool) {
	ok = true
	switch symbol {
	case '>':
		op = OP_RIGHT
	case '<':
		op = OP_LEFT
	case '+':
		op = OP_INC
	case '-':
		op = OP_DEC
	case '.':
		op = OP_OUTPUT
	case ',':
		op = OP_INPUT
	case '[':
		op = OP_BEGIN
	case ']':
		op = OP_END
	default:
		ok = false
	}
	return
}

// Valid returns true if the operation is a known instruction.
func (op CodeOp) Valid() bool {
	return op >= OP_RIGHT && op <= OP_HALT
}

// Jumps returns true if the operation carries a jump target.
func (op CodeOp) Jumps() bool {
	return op == OP_BEGIN || op == OP_END
}

// Code is a single translated instruction.
// Target is only meaningful for OP_BEGIN and OP_END.
type Code struct {
	Op     CodeOp `cbor:"1,keyasint"`
	Target int    `cbor:"2,keyasint,omitempty"`
}

// MakeCode creates an instruction without a jump target.
func MakeCode(op CodeOp) Code {
	return Code{Op: op}
}

// MakeCodeBegin creates a '[' instruction, jumping to 'target' on zero.
func MakeCodeBegin(target int) Code {
	return Code{Op: OP_BEGIN, Target: target}
}

// MakeCodeEnd creates a ']' instruction, jumping to 'target' on non-zero.
func MakeCodeEnd(target int) Code {
	return Code{Op: OP_END, Target: target}
}

// MakeCodeHalt creates the end-of-program instruction.
func MakeCodeHalt() Code {
	return Code{Op: OP_HALT}
}

func (code Code) String() (out string) {
	switch {
	case code.Op.Jumps() && code.Target == TARGET_NONE:
		out = fmt.Sprintf("%v ?", code.Op)
	case code.Op.Jumps():
		out = fmt.Sprintf("%v %04x", code.Op, code.Target)
	default:
		out = code.Op.String()
	}
	return
}
