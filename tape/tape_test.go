package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTape(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(TAPE_SIZE, TAPE_SIZE/2)
	assert.NoError(err)
	assert.Equal(TAPE_SIZE, tape.Len())
	assert.Equal(TAPE_SIZE/2, tape.Pointer)
	assert.Equal(TAPE_SIZE/2, tape.Start())
	for _, cell := range tape.Cells {
		if cell != 0 {
			t.Fatalf("cell not zero: %v", cell)
		}
	}
}

func TestNewTape_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		size  int
		start int
		err   error
	}){
		{"zero_size", 0, 0, ErrTapeSize},
		{"negative_size", -1, 0, ErrTapeSize},
		{"negative_start", 16, -1, ErrTapeStart},
		{"start_at_end", 16, 16, ErrTapeStart},
		{"start_past_end", 16, 100, ErrTapeStart},
	}

	for _, entry := range table {
		tape, err := NewTape(entry.size, entry.start)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(tape, entry.name)
	}
}

func TestTape_Forward(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(3, 0)
	assert.NoError(err)

	assert.NoError(tape.Forward())
	assert.Equal(1, tape.Pointer)
	assert.NoError(tape.Forward())
	assert.Equal(2, tape.Pointer)

	assert.ErrorIs(tape.Forward(), ErrOverflow)
	assert.Equal(2, tape.Pointer)
}

func TestTape_Backward(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(3, 2)
	assert.NoError(err)

	assert.NoError(tape.Backward())
	assert.NoError(tape.Backward())
	assert.Equal(0, tape.Pointer)

	assert.ErrorIs(tape.Backward(), ErrUnderflow)
	assert.Equal(0, tape.Pointer)
}

func TestTape_Wrap(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(1, 0)
	assert.NoError(err)

	tape.Decrement()
	assert.Equal(byte(255), tape.Value())

	tape.Increment()
	assert.Equal(byte(0), tape.Value())

	tape.Set(255)
	tape.Increment()
	assert.Equal(byte(0), tape.Value())
}

func TestTape_Reset(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(8, 4)
	assert.NoError(err)

	tape.Set(0x55)
	assert.NoError(tape.Forward())
	tape.Set(0xaa)

	tape.Reset()
	assert.Equal(4, tape.Pointer)
	assert.Equal(make([]byte, 8), tape.Cells)
}

func TestTape_String(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(3, 1)
	assert.NoError(err)

	tape.Set(7)
	assert.Equal("00001: 00 [07] 00", tape.String())
}
