package io

import (
	"errors"
	"io"
)

// Stream provides sequential byte I/O over an io.Reader for input and
// an io.Writer for output. Nothing is buffered; each Send is one Write.
type Stream struct {
	Input  io.Reader
	Output io.Writer

	Received int // Bytes received since the last Rewind.
	Sent     int // Bytes sent since the last Rewind.
}

var _ Channel = (*Stream)(nil)

// Rewind clears the counters. The underlying streams cannot be rewound.
func (st *Stream) Rewind() {
	st.Received = 0
	st.Sent = 0
}

// Receive reads exactly one byte from the input stream.
// Returns ErrChannelEmpty at end of input.
func (st *Stream) Receive() (value byte, err error) {
	if st.Input == nil {
		err = ErrChannelInput
		return
	}

	var one [1]byte
	_, err = io.ReadFull(st.Input, one[:])
	if errors.Is(err, io.EOF) {
		err = ErrChannelEmpty
		return
	}
	if err != nil {
		return
	}

	value = one[0]
	st.Received++

	return
}

// Send writes one byte to the output stream.
func (st *Stream) Send(value byte) (err error) {
	if st.Output == nil {
		err = ErrChannelOutput
		return
	}

	n, err := st.Output.Write([]byte{value})
	if err != nil {
		return
	}
	if n != 1 {
		err = ErrChannelPartial
		return
	}

	st.Sent++

	return
}
