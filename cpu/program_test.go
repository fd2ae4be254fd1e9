package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramString(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile("add one: +\nloop: [ > - ] done .")
	assert.NoError(err)
	assert.Equal("+[>-].", prog.String())

	again, err := Compile(prog.String())
	assert.NoError(err)
	assert.Equal(prog.Codes, again.Codes)
}

func TestProgramTerminate(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.False(prog.Terminated())

	prog.Terminate()
	assert.True(prog.Terminated())
	assert.Equal([]Code{MakeCodeHalt()}, prog.Codes)
	assert.Nil(prog.Sources)

	prog.Terminate()
	assert.Equal(1, len(prog.Codes))
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile("+\n-")
	assert.NoError(err)

	src, ok := prog.Debug(1)
	assert.True(ok)
	assert.Equal(Source{LineNo: 2, Column: 1}, src)
	assert.Equal("2:1", src.String())

	// The halt has no source location.
	_, ok = prog.Debug(2)
	assert.False(ok)

	_, ok = prog.Debug(3)
	assert.False(ok)

	_, ok = prog.Debug(-1)
	assert.False(ok)
}

func TestProgramVerify(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile("+[>[-]<-]")
	assert.NoError(err)
	assert.NoError(prog.Verify())

	table := [](struct {
		name  string
		codes []Code
		err   error
		ip    int
	}){
		{"unterminated", []Code{MakeCode(OP_INC)}, ErrUnterminated, -1},
		{"empty", nil, ErrUnterminated, -1},
		{"begin_target", []Code{MakeCodeBegin(1), MakeCodeEnd(1), MakeCodeHalt()}, ErrTargetInvalid, 0},
		{"end_target", []Code{MakeCodeBegin(2), MakeCodeEnd(0), MakeCodeHalt()}, ErrTargetInvalid, 1},
		{"unresolved", []Code{MakeCodeBegin(TARGET_NONE), MakeCodeEnd(1), MakeCodeHalt()}, ErrTargetInvalid, 0},
		{"unmatched_end", []Code{MakeCodeEnd(0), MakeCodeHalt()}, ErrUnmatchedEnd, 0},
		{"unmatched_begin", []Code{MakeCode(OP_INC), MakeCodeBegin(3), MakeCodeHalt()}, ErrUnmatchedBegin, 1},
		{"opcode", []Code{{Op: CodeOp(42)}, MakeCodeHalt()}, ErrOpcodeInvalid, 0},
	}

	for _, entry := range table {
		prog := &Program{Codes: entry.codes}
		err := prog.Verify()
		assert.ErrorIs(err, entry.err, entry.name)
		if entry.ip >= 0 {
			perr, ok := err.(*ErrProgram)
			if assert.True(ok, entry.name) {
				assert.Equal(entry.ip, perr.Ip, entry.name)
			}
		}
	}

	prog = &Program{
		Codes:   []Code{MakeCode(OP_INC), MakeCodeHalt()},
		Sources: []Source{{LineNo: 1, Column: 1}},
	}
	assert.ErrorIs(prog.Verify(), ErrImageInvalid)
}

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile("++>+++++[<+>-]<.")
	assert.NoError(err)

	data, err := prog.MarshalBinary()
	assert.NoError(err)

	loaded := &Program{}
	err = loaded.UnmarshalBinary(data)
	assert.NoError(err)
	assert.Equal(prog, loaded)

	// Encoding is deterministic.
	again, err := loaded.MarshalBinary()
	assert.NoError(err)
	assert.Equal(data, again)
}

func TestProgramBinary_Invalid(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}

	assert.ErrorIs(prog.UnmarshalBinary([]byte{0xff, 0x00}), ErrImageInvalid)
	assert.ErrorIs(prog.UnmarshalBinary(nil), ErrImageInvalid)

	wrong := programImage{Magic: "bad", Version: IMAGE_VERSION, Codes: []Code{MakeCodeHalt()}}
	data, err := cborEncMode.Marshal(&wrong)
	assert.NoError(err)
	assert.ErrorIs(prog.UnmarshalBinary(data), ErrImageInvalid)

	future := programImage{Magic: IMAGE_MAGIC, Version: IMAGE_VERSION + 1, Codes: []Code{MakeCodeHalt()}}
	data, err = cborEncMode.Marshal(&future)
	assert.NoError(err)
	assert.ErrorIs(prog.UnmarshalBinary(data), ErrImageInvalid)

	tampered := programImage{
		Magic:   IMAGE_MAGIC,
		Version: IMAGE_VERSION,
		Codes:   []Code{MakeCodeBegin(7), MakeCodeEnd(1), MakeCodeHalt()},
	}
	data, err = cborEncMode.Marshal(&tampered)
	assert.NoError(err)
	assert.ErrorIs(prog.UnmarshalBinary(data), ErrTargetInvalid)

	// Failed loads leave the program untouched.
	assert.Nil(prog.Codes)
}
