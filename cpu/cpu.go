package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/ubf/io"
	"github.com/ezrec/ubf/tape"
)

// Cpu is the execution context for a halt-terminated instruction sequence.
type Cpu struct {
	Verbose    bool // Set to enable verbose logging.
	InputStall bool // If set, ',' does not advance the instruction pointer.

	Tape    *tape.Tape // Data memory.
	Channel io.Channel // Source for ',' and sink for '.'.
	Codes   []Code     // Instruction sequence being executed.

	Ip    int // Current instruction pointer.
	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a tape and an I/O channel.
func NewCpu(memory *tape.Tape, channel io.Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Tape:    memory,
		Channel: channel,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   ip: %04x\n", cpu.Ip)
	text += fmt.Sprintf("ticks: %d\n", cpu.Ticks)
	if cpu.Tape != nil {
		text += fmt.Sprintf(" tape: %v\n", cpu.Tape)
	}

	return
}

// Reset the CPU state.
// - Clears the tape, and returns its cursor to the start.
// - Zeros the instruction pointer and tick counter.
// - Rewinds the I/O channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.Ticks = 0

	if cpu.Tape != nil {
		cpu.Tape.Reset()
	}

	if cpu.Channel != nil {
		cpu.Channel.Rewind()
	}
}

// FetchCode fetches the instruction at the instruction pointer.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Ip < 0 || cpu.Ip >= len(cpu.Codes) {
		err = ErrIpInvalid
		return
	}

	code = cpu.Codes[cpu.Ip]

	return
}

// Tick executes a single instruction cycle.
// Returns ErrHalt once the halt instruction is reached.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// jump validates a jump target.
func (cpu *Cpu) jump(target int) (err error) {
	if target < 0 || target >= len(cpu.Codes) {
		err = ErrTargetInvalid
		return
	}

	cpu.Ip = target

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Ip, code)
	}

	if cpu.Tape == nil {
		err = ErrNoTape
		return
	}

	memory := cpu.Tape

	switch code.Op {
	case OP_RIGHT:
		err = memory.Forward()
		if err != nil {
			return
		}
		cpu.Ip++
	case OP_LEFT:
		err = memory.Backward()
		if err != nil {
			return
		}
		cpu.Ip++
	case OP_INC:
		memory.Increment()
		cpu.Ip++
	case OP_DEC:
		memory.Decrement()
		cpu.Ip++
	case OP_OUTPUT:
		if cpu.Channel == nil {
			err = ErrNoChannel
			return
		}
		err = cpu.Channel.Send(memory.Value())
		if err != nil {
			err = errors.Join(ErrOutput, err)
			return
		}
		cpu.Ip++
	case OP_INPUT:
		if cpu.Channel == nil {
			err = ErrNoChannel
			return
		}
		var value byte
		value, err = cpu.Channel.Receive()
		if errors.Is(err, io.ErrChannelEmpty) {
			err = errors.Join(ErrInputExhausted, err)
			return
		}
		if err != nil {
			err = errors.Join(ErrInput, err)
			return
		}
		memory.Set(value)
		if !cpu.InputStall {
			cpu.Ip++
		}
	case OP_BEGIN:
		if memory.Value() == 0 {
			err = cpu.jump(code.Target)
		} else {
			cpu.Ip++
		}
	case OP_END:
		if memory.Value() != 0 {
			err = cpu.jump(code.Target)
		} else {
			cpu.Ip++
		}
	case OP_HALT:
		err = ErrHalt
	default:
		err = ErrOpcodeInvalid
	}

	if cpu.Verbose && err == nil {
		log.Printf("      %v", memory)
	}

	return
}
