// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape implements the fixed-size byte memory of the machine.
package tape

import (
	"fmt"
	"strings"
)

const (
	TAPE_SIZE   = 30000 // Default number of cells.
	TAPE_WINDOW = 4     // Cells either side of the cursor shown by String().
)

// Tape is a fixed-capacity array of byte cells with a single cursor.
type Tape struct {
	Cells   []byte // Cell contents.
	Pointer int    // Current cursor position.

	start int
}

// NewTape creates a zeroed tape of 'size' cells, with the cursor at 'start'.
func NewTape(size int, start int) (tape *Tape, err error) {
	if size <= 0 {
		err = ErrTapeSize
		return
	}

	if start < 0 || start >= size {
		err = ErrTapeStart
		return
	}

	tape = &Tape{
		Cells: make([]byte, size),
		start: start,
	}

	tape.Reset()

	return
}

// Reset clears all cells and returns the cursor to the starting offset.
func (tape *Tape) Reset() {
	clear(tape.Cells)
	tape.Pointer = tape.start
}

// Len returns the number of cells.
func (tape *Tape) Len() int {
	return len(tape.Cells)
}

// Start returns the starting cursor offset.
func (tape *Tape) Start() int {
	return tape.start
}

// Forward moves the cursor one cell up.
func (tape *Tape) Forward() (err error) {
	if tape.Pointer >= len(tape.Cells)-1 {
		err = ErrOverflow
		return
	}

	tape.Pointer++

	return
}

// Backward moves the cursor one cell down.
func (tape *Tape) Backward() (err error) {
	if tape.Pointer <= 0 {
		err = ErrUnderflow
		return
	}

	tape.Pointer--

	return
}

// Increment adds one to the current cell, wrapping at 256.
func (tape *Tape) Increment() {
	tape.Cells[tape.Pointer]++
}

// Decrement subtracts one from the current cell, wrapping at 0.
func (tape *Tape) Decrement() {
	tape.Cells[tape.Pointer]--
}

// Value returns the current cell.
func (tape *Tape) Value() byte {
	return tape.Cells[tape.Pointer]
}

// Set replaces the current cell.
func (tape *Tape) Set(value byte) {
	tape.Cells[tape.Pointer] = value
}

// String returns the cells around the cursor, with the cursor cell bracketed.
func (tape *Tape) String() (text string) {
	lo := max(0, tape.Pointer-TAPE_WINDOW)
	hi := min(len(tape.Cells), tape.Pointer+TAPE_WINDOW+1)

	var cells []string
	for n := lo; n < hi; n++ {
		if n == tape.Pointer {
			cells = append(cells, fmt.Sprintf("[%02x]", tape.Cells[n]))
		} else {
			cells = append(cells, fmt.Sprintf("%02x", tape.Cells[n]))
		}
	}

	text = fmt.Sprintf("%05d: %v", tape.Pointer, strings.Join(cells, " "))

	return
}
