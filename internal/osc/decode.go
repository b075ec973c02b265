package osc

import "encoding/binary"

// Decode parses a single UDP datagram into a flat, in-order list of
// (address, timetag, args) tuples obtained by depth-first traversal of
// nested bundles, per SPEC_FULL.md §4.1. A bare (non-bundled) message gets
// timetag 0.
//
// Decode never allocates beyond the returned slice and each message's
// argument slice.
func Decode(buf []byte) ([]Message, error) {
	var out []Message
	if err := decodePacket(buf, 0, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodePacket(buf []byte, timetag int64, out *[]Message) error {
	if len(buf) == 0 {
		return errf("packet", "empty packet")
	}
	switch buf[0] {
	case '/':
		msg, err := decodeMessage(buf, timetag)
		if err != nil {
			return err
		}
		*out = append(*out, msg)
		return nil
	case '#':
		return decodeBundle(buf, out)
	default:
		return errf("packet", "unrecognized packet start byte %q", buf[0])
	}
}

func decodeBundle(buf []byte, out *[]Message) error {
	ident, rest, err := readString(buf)
	if err != nil {
		return &Error{Op: "bundle-id", Err: err}
	}
	if ident != "#bundle" {
		return errf("bundle-id", "expected #bundle, got %q", ident)
	}

	timetag, rest, err := readInt64(rest)
	if err != nil {
		return &Error{Op: "bundle-timetag", Err: err}
	}

	for len(rest) > 0 {
		if len(rest) < 4 {
			return errf("bundle-element", "truncated element length")
		}
		size := int32(binary.BigEndian.Uint32(rest[:4]))
		rest = rest[4:]
		if size < 0 || int(size) > len(rest) {
			return errf("bundle-element", "element size %d exceeds remaining %d bytes", size, len(rest))
		}
		elem := rest[:size]
		rest = rest[size:]
		if err := decodePacket(elem, timetag, out); err != nil {
			return err
		}
	}
	return nil
}

func decodeMessage(buf []byte, timetag int64) (Message, error) {
	address, rest, err := readString(buf)
	if err != nil {
		return Message{}, &Error{Op: "address", Err: err}
	}

	if len(rest) == 0 || rest[0] != ',' {
		return Message{}, errf("type-tags", "missing type tag string start ','")
	}
	typeTags, rest, err := readString(rest)
	if err != nil {
		return Message{}, &Error{Op: "type-tags", Err: err}
	}
	tags := typeTags[1:]

	args := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		switch tag {
		case TagInt:
			v, r, err := readInt32(rest)
			if err != nil {
				return Message{}, &Error{Op: "arg-int", Err: err}
			}
			rest = r
			args = append(args, v)
		case TagFloat:
			v, r, err := readFloat32(rest)
			if err != nil {
				return Message{}, &Error{Op: "arg-float", Err: err}
			}
			rest = r
			args = append(args, v)
		case TagString:
			v, r, err := readString(rest)
			if err != nil {
				return Message{}, &Error{Op: "arg-string", Err: err}
			}
			rest = r
			args = append(args, v)
		default:
			return Message{}, errf("arg-tag", "unsupported type tag %q", tag)
		}
	}

	return Message{Address: address, Timetag: timetag, Args: args}, nil
}

// readString reads a null-terminated, 4-byte-padded OSC string starting at
// buf[0] and returns its value (without padding) and the remaining bytes.
func readString(buf []byte) (string, []byte, error) {
	nul := -1
	for i, b := range buf {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul < 0 {
		return "", nil, errf("string", "no null terminator found")
	}
	padded := padLen(nul + 1)
	if padded > len(buf) {
		return "", nil, errf("string", "padded length %d exceeds buffer of %d bytes", padded, len(buf))
	}
	return string(buf[:nul]), buf[padded:], nil
}

// padLen rounds n up to the next multiple of 4, per OSC's string/blob
// padding rule.
func padLen(n int) int {
	return (n + 3) &^ 3
}

func readInt32(buf []byte) (int32, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, errf("int32", "need 4 bytes, have %d", len(buf))
	}
	return int32(binary.BigEndian.Uint32(buf[:4])), buf[4:], nil
}

func readInt64(buf []byte) (int64, []byte, error) {
	if len(buf) < 8 {
		return 0, nil, errf("int64", "need 8 bytes, have %d", len(buf))
	}
	return int64(binary.BigEndian.Uint64(buf[:8])), buf[8:], nil
}

func readFloat32(buf []byte) (float32, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, errf("float32", "need 4 bytes, have %d", len(buf))
	}
	bits := binary.BigEndian.Uint32(buf[:4])
	return float32FromBits(bits), buf[4:], nil
}
