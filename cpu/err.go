package cpu

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt           = errors.New(f("halt"))
	ErrIpInvalid      = errors.New(f("ip outside of program"))
	ErrTargetInvalid  = errors.New(f("jump target invalid"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrInput          = errors.New(f("input error"))
	ErrOutput         = errors.New(f("output error"))
	ErrNoTape         = errors.New(f("no tape attached"))
	ErrNoChannel      = errors.New(f("no channel attached"))

	// Translation errors
	ErrUnmatchedEnd   = errors.New(f("unmatched `]`, missing `[`"))
	ErrUnmatchedBegin = errors.New(f("unmatched `[`, missing `]`"))

	// Program errors
	ErrUnterminated = errors.New(f("program not terminated by halt"))
	ErrImageInvalid = errors.New(f("program image invalid"))
)

// ErrOpcode annotates an execution error with the failing instruction.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("instruction %v", Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax indicates the source location of a translation error.
type ErrSyntax struct {
	LineNo int
	Column int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d column %d %v", err.LineNo, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrProgram indicates the address of an inconsistent instruction.
type ErrProgram struct {
	Ip  int
	Err error
}

func (err *ErrProgram) Error() string {
	return f("ip %04x %v", err.Ip, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}
