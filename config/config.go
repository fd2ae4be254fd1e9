// Package config loads the machine configuration.
//
// A configuration can be written as TOML:
//
//	tape-size = 30000
//	tape-start = 0
//	input-stall = false
//	verbose = false
//
// or as a Starlark script, which assigns the same settings as globals:
//
//	tape_size = TAPE_SIZE * 2
//	tape_start = tape_size // 4
//	input_stall = False
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/ubf/tape"
)

// TAPE_START_MIDPOINT places the cursor in the middle of the tape.
const TAPE_START_MIDPOINT = -1

// Config is the run configuration of the machine.
type Config struct {
	TapeSize   int  `toml:"tape-size"`   // Number of tape cells.
	TapeStart  int  `toml:"tape-start"`  // Starting cursor, or TAPE_START_MIDPOINT.
	InputStall bool `toml:"input-stall"` // If set, ',' does not advance the IP.
	Verbose    bool `toml:"verbose"`     // If set, enables verbose logging.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TapeSize:  tape.TAPE_SIZE,
		TapeStart: TAPE_START_MIDPOINT,
	}
}

// Start returns the starting cursor position.
func (cfg Config) Start() int {
	if cfg.TapeStart == TAPE_START_MIDPOINT {
		return cfg.TapeSize / 2
	}
	return cfg.TapeStart
}

// Validate checks the tape geometry.
func (cfg Config) Validate() (err error) {
	if cfg.TapeSize <= 0 {
		err = fmt.Errorf("%w: %d", tape.ErrTapeSize, cfg.TapeSize)
		return
	}

	start := cfg.Start()
	if start < 0 || start >= cfg.TapeSize {
		err = fmt.Errorf("%w: %d", tape.ErrTapeStart, cfg.TapeStart)
		return
	}

	return
}

// Load reads a configuration file, selecting the format by extension.
// Settings missing from the file keep their default values.
func Load(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = LoadToml(data)
	case ".star", ".bzl":
		cfg, err = LoadStarlark(path, data)
	default:
		err = ErrFormat
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	err = cfg.Validate()
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}
