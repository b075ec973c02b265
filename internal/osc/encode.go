package osc

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
func float32ToBits(f float32) uint32      { return math.Float32bits(f) }

// EncodeMessage builds a wire-exact OSC message for the given address and
// typed arguments (int32, float32, or string only). Returns an *Error on
// invalid UTF-8 in the address or an unsupported argument type; the
// Sender wraps it as a CodeEncodeFailed error.
func EncodeMessage(address string, args []interface{}) ([]byte, error) {
	if !utf8.ValidString(address) {
		return nil, errf("encode-address", "address is not valid UTF-8")
	}

	tags := make([]byte, 0, len(args)+1)
	tags = append(tags, ',')
	for _, a := range args {
		switch a.(type) {
		case int32:
			tags = append(tags, TagInt)
		case float32:
			tags = append(tags, TagFloat)
		case string:
			tags = append(tags, TagString)
		default:
			return nil, errf("encode-arg", "unsupported argument type %T", a)
		}
	}

	buf := make([]byte, 0, 64)
	buf = appendPaddedString(buf, address)
	buf = appendPaddedString(buf, string(tags))

	for _, a := range args {
		switch v := a.(type) {
		case int32:
			buf = appendInt32(buf, v)
		case float32:
			buf = appendFloat32(buf, v)
		case string:
			buf = appendPaddedString(buf, v)
		}
	}
	return buf, nil
}

// EncodeBundle wraps encoded messages in an OSC bundle with the given
// timetag. Bundle timetags are carried but never interpreted, per
// spec.md §6.
func EncodeBundle(timetag int64, messages [][]byte) []byte {
	buf := make([]byte, 0, 16)
	buf = appendPaddedString(buf, "#bundle")
	buf = appendInt64(buf, timetag)
	for _, m := range messages {
		buf = appendInt32(buf, int32(len(m)))
		buf = append(buf, m...)
	}
	return buf
}

func appendPaddedString(buf []byte, s string) []byte {
	buf = append(buf, s...)
	buf = append(buf, 0)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func appendInt32(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

func appendInt64(buf []byte, v int64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(v))
	return append(buf, tmp[:]...)
}

func appendFloat32(buf []byte, v float32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], float32ToBits(v))
	return append(buf, tmp[:]...)
}
