// Package cpu implements the translator and executor for the μBF machine.
//
// The Assembler translates source text into a Program in a single pass,
// discarding every character that is not one of the eight instruction
// symbols and resolving each '[' ']' pair into absolute jump targets.
// Program addresses are indexes into the translated instruction sequence,
// not offsets into the source text.
//
// The Cpu executes a halt-terminated Program against a tape.Tape, with
// ',' and '.' serviced by an io.Channel.
package cpu
