// Package io provides the byte-oriented I/O channel used by the executor.
// A channel pairs one input stream (read by ',') with one output stream
// (written by '.').
package io

// Channel defines the interface for the executor's I/O channel.
type Channel interface {
	// Rewind resets the channel's counters.
	Rewind()
	// Receive returns the next byte from the input.
	Receive() (value byte, err error)
	// Send writes a single byte to the output.
	Send(value byte) error
}
