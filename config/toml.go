package config

import (
	"github.com/BurntSushi/toml"
)

// LoadToml decodes a TOML configuration.
func LoadToml(data []byte) (cfg Config, err error) {
	cfg = Default()

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		err = &ErrKey{Key: undecoded[0].String(), Err: ErrKeyUnknown}
		return
	}

	return
}
