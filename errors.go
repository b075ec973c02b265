package tuio

import (
	"errors"
	"fmt"
)

// Code is a high-level TUIO error category, per SPEC_FULL.md §7.
type Code string

const (
	// CodeMalformedPacket is an OSC structural error; fails the whole datagram.
	CodeMalformedPacket Code = "malformed packet"
	// CodeMalformedTuioSet is a set argument count/type mismatch; fails only the offending message.
	CodeMalformedTuioSet Code = "malformed tuio set"
	// CodeUnknownAddress is an address matching no TUIO prefix; forwarded to the default handler.
	CodeUnknownAddress Code = "unknown address"
	// CodeMissingType is a TUIO message with no first type argument; fails the message.
	CodeMissingType Code = "missing type argument"
	// CodeListenerError is a listener that raised during dispatch; recorded, dispatch continues.
	CodeListenerError Code = "listener error"
	// CodeEncodeFailed means the sender could not build an OSC message.
	CodeEncodeFailed Code = "encode failed"
)

// Error is a structured go-tuio error: the operation that failed, its
// category, and (optionally) the underlying cause.
//
// Adapted from the teacher's op/code/inner error struct, stripped of the
// device/queue/errno fields a kernel block driver needs and that a UDP
// protocol library has no use for.
type Error struct {
	Op    string // operation that failed, e.g. "decode", "route", "dispatch"
	Code  Code
	Msg   string
	Inner error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		return fmt.Sprintf("tuio: %s: %s", e.Op, msg)
	}
	return fmt.Sprintf("tuio: %s", msg)
}

func (e *Error) Unwrap() error { return e.Inner }

// Is supports errors.Is comparison by Code: errors.Is(err, &Error{Code: CodeMalformedPacket}).
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

// NewError builds a structured Error with no wrapped cause.
func NewError(op string, code Code, msg string) *Error {
	return &Error{Op: op, Code: code, Msg: msg}
}

// WrapError wraps inner with tuio context, preserving its Code if inner is
// already a *Error.
func WrapError(op string, code Code, inner error) *Error {
	if inner == nil {
		return nil
	}
	if te, ok := inner.(*Error); ok {
		return &Error{Op: op, Code: te.Code, Msg: te.Msg, Inner: inner}
	}
	return &Error{Op: op, Code: code, Msg: inner.Error(), Inner: inner}
}

// IsCode reports whether err is a *Error (anywhere in its Unwrap chain)
// with the given Code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
