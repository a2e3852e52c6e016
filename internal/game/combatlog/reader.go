package combatlog

import (
	"encoding/binary"
	"fmt"
)

// reader reads log fields sequentially.
// Uses Big-Endian byte order for all multi-byte values.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// readByte reads a single byte.
func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("readByte: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readUint16 reads a uint16 (2 bytes, BE).
func (r *reader) readUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, fmt.Errorf("readUint16: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}
