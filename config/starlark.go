package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ubf/tape"
)

// LoadStarlark executes a Starlark configuration script.
// The script may read the predeclared TAPE_SIZE, and assigns any of the
// globals tape_size, tape_start, input_stall and verbose.
func LoadStarlark(name string, src []byte) (cfg Config, err error) {
	cfg = Default()

	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"TAPE_SIZE":           starlark.MakeInt(tape.TAPE_SIZE),
		"TAPE_START_MIDPOINT": starlark.MakeInt(TAPE_START_MIDPOINT),
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	for key, value := range globals {
		switch key {
		case "tape_size":
			cfg.TapeSize, err = starInt(key, value)
		case "tape_start":
			cfg.TapeStart, err = starInt(key, value)
		case "input_stall":
			cfg.InputStall, err = starBool(key, value)
		case "verbose":
			cfg.Verbose, err = starBool(key, value)
		default:
			// Private helpers are allowed.
			if len(key) > 0 && key[0] == '_' {
				continue
			}
			err = &ErrKey{Key: key, Err: ErrKeyUnknown}
		}
		if err != nil {
			return
		}
	}

	return
}

func starInt(key string, value starlark.Value) (out int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrKey{Key: key, Err: ErrKeyType}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = &ErrKey{Key: key, Err: ErrKeyType}
		return
	}

	out = int(st_int64)
	return
}

func starBool(key string, value starlark.Value) (out bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrKey{Key: key, Err: ErrKeyType}
		return
	}

	out = bool(st_bool)
	return
}
