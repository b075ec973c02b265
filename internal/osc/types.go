// Package osc implements the subset of the OSC 1.0 wire format TUIO 1.1
// requires (C1 in SPEC_FULL.md): messages, bundles, and the `i`/`f`/`s`
// type tags, decoded byte-exact per spec.md §4.1.
//
// The decode/encode field-at-a-time style is adapted from
// internal/uapi/marshal.go's explicit binary.ByteOrder-per-field approach
// in the teacher repo, switched from little-endian (kernel structs) to
// big-endian (OSC's wire order).
package osc

import "fmt"

// Supported OSC type tags.
const (
	TagInt    = 'i'
	TagFloat  = 'f'
	TagString = 's'
)

// Message is one decoded OSC message: an address and its typed arguments.
// Arguments are always int32, float32, or string, per the type tags this
// package supports.
type Message struct {
	Address string
	Timetag int64
	Args    []interface{}
}

func (m Message) String() string {
	return fmt.Sprintf("osc.Message{%q %v}", m.Address, m.Args)
}

// Error is a codec failure. On decode it is a structural failure: bad
// padding, a length field that runs past the buffer, an unsupported type
// tag, or a string missing its null terminator within its padded bounds.
// On encode it is invalid UTF-8 in the address or an unsupported argument
// type.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("osc: %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func errf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}
