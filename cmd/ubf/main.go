// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/ubf/config"
	"github.com/ezrec/ubf/cpu"
	"github.com/ezrec/ubf/emulator"
)

func main() {
	var compile string
	var image string
	var save bool
	var configFile string
	var input string
	var output string
	var tapeSize int
	var stall bool
	var keyboard bool
	var list bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".bf file to compile")
	flag.StringVar(&image, "r", "", ".ubf program image to use")
	flag.BoolVar(&save, "s", false, "Save program to image, do not execute")
	flag.StringVar(&configFile, "f", "", "Configuration file (.toml or .star)")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.IntVar(&tapeSize, "t", 0, "Tape size, overriding the configuration")
	flag.BoolVar(&stall, "stall", false, "Do not advance past ',' (legacy behaviour)")
	flag.BoolVar(&keyboard, "k", false, "Raw keyboard input when input is a terminal")
	flag.BoolVar(&list, "l", false, "List the translated program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	switch {
	case flag.NArg() == 1 && len(compile) == 0:
		compile = flag.Arg(0)
	case flag.NArg() != 0:
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if tapeSize != 0 {
		cfg.TapeSize = tapeSize
	}
	cfg.InputStall = cfg.InputStall || stall
	cfg.Verbose = cfg.Verbose || verbose

	prog := &cpu.Program{}

	switch {
	case len(compile) != 0:
		// Translate a new instruction sequence.
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: cfg.Verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		prog.Terminate()
	case len(image) != 0:
		data, err := os.ReadFile(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		err = prog.UnmarshalBinary(data)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		log.Fatalf("%v: No program given", os.Args[0])
	}

	if list {
		for ip, code := range prog.Codes {
			src, _ := prog.Debug(ip)
			fmt.Printf("%04x %8v  %v\n", ip, src, code)
		}
	}

	if save {
		if len(compile) == 0 || len(image) == 0 {
			log.Fatalf("%v: -s requires both -c and -r", os.Args[0])
		}
		data, err := prog.MarshalBinary()
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		err = os.WriteFile(image, data, 0644)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		return
	}

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	emu.Program = prog

	if input == "-" {
		emu.Stream.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Stream.Input = inf
	}

	if output == "-" {
		emu.Stream.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Stream.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	// Deliver each keypress to ',' without waiting for a newline.
	fd := int(os.Stdin.Fd())
	if keyboard && input == "-" && term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		err = emu.Run()
		term.Restore(fd, state)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
