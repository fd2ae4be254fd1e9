package cpu

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const (
	IMAGE_MAGIC   = "ubf" // Program image identifier.
	IMAGE_VERSION = 1     // Program image encoding version.
)

// Source is the location of an instruction's symbol in the source text.
type Source struct {
	LineNo int `cbor:"1,keyasint"`
	Column int `cbor:"2,keyasint"`
}

func (src Source) String() string {
	return fmt.Sprintf("%d:%d", src.LineNo, src.Column)
}

// Program is a translated instruction sequence. The index of an
// instruction in Codes is its address.
type Program struct {
	Codes   []Code   // Instructions.
	Sources []Source // Source location of each instruction, if known.
}

// programImage is the on-disk encoding of a Program.
type programImage struct {
	Magic   string   `cbor:"1,keyasint"`
	Version int      `cbor:"2,keyasint"`
	Codes   []Code   `cbor:"3,keyasint"`
	Sources []Source `cbor:"4,keyasint,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cpu: cbor: %v", err))
	}
	cborEncMode = em
}

// Debug returns the source location of the instruction at 'ip'.
func (prog *Program) Debug(ip int) (src Source, ok bool) {
	if ip < 0 || ip >= len(prog.Sources) {
		return
	}

	src = prog.Sources[ip]
	ok = src.LineNo > 0

	return
}

// Terminated returns true if the program ends with a halt.
func (prog *Program) Terminated() bool {
	n := len(prog.Codes)
	return n > 0 && prog.Codes[n-1].Op == OP_HALT
}

// Terminate appends the halt instruction, if not already present.
func (prog *Program) Terminate() {
	if prog.Terminated() {
		return
	}

	prog.Codes = append(prog.Codes, MakeCodeHalt())
	if len(prog.Sources) != 0 {
		prog.Sources = append(prog.Sources, Source{})
	}
}

// String returns the canonical source text of the program.
// The trailing halt has no symbol, and is omitted.
func (prog *Program) String() string {
	var text strings.Builder
	for _, code := range prog.Codes {
		if code.Op == OP_HALT {
			continue
		}
		text.WriteString(code.Op.String())
	}
	return text.String()
}

// Verify checks that every '[' and ']' pair jumps to the addresses just
// past its partner, and that the program is halt-terminated.
func (prog *Program) Verify() (err error) {
	var stack Stack

	if len(prog.Sources) != 0 && len(prog.Sources) != len(prog.Codes) {
		err = ErrImageInvalid
		return
	}

	for ip, code := range prog.Codes {
		switch {
		case !code.Op.Valid():
			err = &ErrProgram{Ip: ip, Err: ErrOpcodeInvalid}
			return
		case code.Op == OP_BEGIN:
			stack.Push(ip)
		case code.Op == OP_END:
			begin, ok := stack.Pop()
			if !ok {
				err = &ErrProgram{Ip: ip, Err: ErrUnmatchedEnd}
				return
			}
			if prog.Codes[begin].Target != ip+1 {
				err = &ErrProgram{Ip: begin, Err: ErrTargetInvalid}
				return
			}
			if code.Target != begin+1 {
				err = &ErrProgram{Ip: ip, Err: ErrTargetInvalid}
				return
			}
		}
	}

	if begin, ok := stack.Peek(); ok {
		err = &ErrProgram{Ip: begin, Err: ErrUnmatchedBegin}
		return
	}

	if !prog.Terminated() {
		err = ErrUnterminated
		return
	}

	return
}

// MarshalBinary encodes the program as a CBOR image.
func (prog *Program) MarshalBinary() (data []byte, err error) {
	image := programImage{
		Magic:   IMAGE_MAGIC,
		Version: IMAGE_VERSION,
		Codes:   prog.Codes,
		Sources: prog.Sources,
	}

	return cborEncMode.Marshal(&image)
}

// UnmarshalBinary decodes and verifies a CBOR program image.
func (prog *Program) UnmarshalBinary(data []byte) (err error) {
	var image programImage

	err = cbor.Unmarshal(data, &image)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrImageInvalid, err)
		return
	}

	if image.Magic != IMAGE_MAGIC || image.Version != IMAGE_VERSION {
		err = ErrImageInvalid
		return
	}

	loaded := Program{
		Codes:   image.Codes,
		Sources: image.Sources,
	}

	err = loaded.Verify()
	if err != nil {
		return
	}

	*prog = loaded

	return
}
