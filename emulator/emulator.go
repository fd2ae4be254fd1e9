// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/ubf/config"
	"github.com/ezrec/ubf/cpu"
	"github.com/ezrec/ubf/io"
	"github.com/ezrec/ubf/tape"
)

// Emulator state. CPU + tape + IO channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.

	Stream io.Stream // Input and output IO channel.
}

// NewEmulator creates a new emulator from a configuration.
func NewEmulator(cfg config.Config) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	memory, err := tape.NewTape(cfg.TapeSize, cfg.Start())
	if err != nil {
		return
	}

	emu = &Emulator{
		Verbose: cfg.Verbose,
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(memory, &emu.Stream)
	emu.Cpu.InputStall = cfg.InputStall

	return
}

// Reset the emulator, loading the current program into the CPU.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil || !emu.Program.Terminated() {
		err = cpu.ErrUnterminated
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Codes = emu.Program.Codes
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emulator: %d instructions, tape %d cells at %d",
			len(emu.Program.Codes), emu.Cpu.Tape.Len(), emu.Cpu.Tape.Start())
	}

	return
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Source returns the source location of the current instruction.
func (emu *Emulator) Source() (src cpu.Source, ok bool) {
	return emu.Program.Debug(emu.Cpu.Ip)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			rte := &ErrRuntime{Ip: ip, Err: err}
			src, ok := emu.Program.Debug(ip)
			if ok {
				rte.LineNo = src.LineNo
				rte.Column = src.Column
			}
			err = rte
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts, or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halt after %d ticks, %d bytes in, %d bytes out",
			emu.Ticks(), emu.Stream.Received, emu.Stream.Sent)
	}

	return
}
