package config

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	ErrFormat = errors.New(f("configuration format unknown"))
)

// ErrKey indicates a configuration key that could not be used.
type ErrKey struct {
	Key string
	Err error
}

func (err *ErrKey) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err *ErrKey) Unwrap() error {
	return err.Err
}

var (
	ErrKeyUnknown = errors.New(f("unknown key"))
	ErrKeyType    = errors.New(f("wrong value type"))
)
