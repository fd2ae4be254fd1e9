package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBroken = errors.New("broken")

type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	return 0, errBroken
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return 0, nil
}

func TestStream_Receive(t *testing.T) {
	assert := assert.New(t)

	stream := &Stream{Input: bytes.NewBuffer([]byte{0x41, 0x00, 0xff})}
	stream.Rewind()

	for _, expected := range []byte{0x41, 0x00, 0xff} {
		value, err := stream.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}
	assert.Equal(3, stream.Received)

	_, err := stream.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)
	assert.Equal(3, stream.Received)
}

func TestStream_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	stream := &Stream{}

	_, err := stream.Receive()
	assert.ErrorIs(err, ErrChannelInput)
}

func TestStream_Receive_ReadError(t *testing.T) {
	assert := assert.New(t)

	stream := &Stream{Input: brokenReader{}}

	_, err := stream.Receive()
	assert.ErrorIs(err, errBroken)
	assert.NotErrorIs(err, ErrChannelEmpty)
}

func TestStream_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	stream := &Stream{Output: output}

	assert.NoError(stream.Send('h'))
	assert.NoError(stream.Send('i'))
	assert.Equal("hi", output.String())
	assert.Equal(2, stream.Sent)

	stream.Rewind()
	assert.Equal(0, stream.Sent)
	assert.Equal("hi", output.String())
}

func TestStream_Send_Errors(t *testing.T) {
	assert := assert.New(t)

	stream := &Stream{}
	assert.ErrorIs(stream.Send(0), ErrChannelOutput)

	stream.Output = brokenWriter{}
	assert.ErrorIs(stream.Send(0), errBroken)

	stream.Output = shortWriter{}
	assert.ErrorIs(stream.Send(0), ErrChannelPartial)
	assert.Equal(0, stream.Sent)
}
