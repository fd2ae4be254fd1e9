// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Assembler is a single pass translator from source text to a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the translated instructions.
}

// Compile translates source text, and terminates it with a halt.
func Compile(source string) (prog *Program, err error) {
	asm := &Assembler{}

	prog, err = asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	prog.Terminate()

	return
}

// Parse translates the source text from 'input'.
//
// Characters other than the eight instruction symbols are ignored.
// Each '[' is back-patched when its ']' is found, to jump just past
// that ']'; each ']' jumps just past its '['.
//
// The returned Program is not halt-terminated.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var stack Stack
	var where *Source

	defer func() {
		if err != nil {
			if where != nil {
				err = &ErrSyntax{LineNo: where.LineNo, Column: where.Column, Err: err}
			}
			prog = nil
		}
	}()

	prog = &Program{}

	lineno := 1
	column := 0

	for {
		var symbol rune
		symbol, _, err = reader.ReadRune()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			where = nil
			return
		}

		column++
		if symbol == '\n' {
			lineno++
			column = 0
			continue
		}

		op, ok := CodeOpOf(symbol)
		if !ok {
			continue
		}

		src := Source{LineNo: lineno, Column: column}
		where = &src

		ip := len(prog.Codes)
		code := MakeCode(op)

		switch op {
		case OP_BEGIN:
			stack.Push(ip)
			code.Target = TARGET_NONE
		case OP_END:
			begin, ok := stack.Pop()
			if !ok {
				err = ErrUnmatchedEnd
				return
			}
			prog.Codes[begin].Target = ip + 1
			code.Target = begin + 1
		}

		prog.Codes = append(prog.Codes, code)
		prog.Sources = append(prog.Sources, src)

		if asm.Verbose {
			log.Printf("%v: %04x: %v", src, ip, code)
		}
	}

	if begin, ok := stack.Peek(); ok {
		where = &prog.Sources[begin]
		err = ErrUnmatchedBegin
		return
	}

	return
}
