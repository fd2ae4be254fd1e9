package io

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelEmpty   = errors.New(f("channel empty"))
	ErrChannelInput   = errors.New(f("channel has no input"))
	ErrChannelOutput  = errors.New(f("channel has no output"))
	ErrChannelPartial = errors.New(f("partial channel write"))
)
