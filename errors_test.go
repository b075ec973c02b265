package tuio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStringIncludesOp(t *testing.T) {
	e := NewError("decode", CodeMalformedPacket, "truncated length prefix")
	assert.Contains(t, e.Error(), "decode")
	assert.Contains(t, e.Error(), "truncated length prefix")
}

func TestErrorIsMatchesByCode(t *testing.T) {
	e := NewError("decode", CodeMalformedPacket, "x")
	assert.True(t, errors.Is(e, &Error{Code: CodeMalformedPacket}))
	assert.False(t, errors.Is(e, &Error{Code: CodeMissingType}))
}

func TestWrapErrorPreservesCode(t *testing.T) {
	inner := NewError("decode", CodeMalformedPacket, "x")
	wrapped := WrapError("transport.read", CodeEncodeFailed, inner)
	assert.Equal(t, CodeMalformedPacket, wrapped.Code)
	assert.ErrorIs(t, wrapped, inner)
}

func TestIsCode(t *testing.T) {
	err := NewError("set", CodeMalformedTuioSet, "bad arity")
	assert.True(t, IsCode(err, CodeMalformedTuioSet))
	assert.False(t, IsCode(err, CodeListenerError))
	assert.False(t, IsCode(errors.New("plain"), CodeMalformedTuioSet))
}
