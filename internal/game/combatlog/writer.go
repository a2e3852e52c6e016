package combatlog

import "bytes"

// writer appends log fields.
// Uses Big-Endian byte order for all multi-byte values.
type writer struct {
	buf *bytes.Buffer
}

func newWriter(capacity int) *writer {
	return &writer{buf: bytes.NewBuffer(make([]byte, 0, capacity))}
}

// writeByte writes a single byte.
func (w *writer) writeByte(b byte) {
	w.buf.WriteByte(b)
}

// writeUint16 writes a uint16 (2 bytes, BE).
// Manual encoding instead of binary.Write.
func (w *writer) writeUint16(val uint16) {
	w.buf.WriteByte(byte(val >> 8))
	w.buf.WriteByte(byte(val))
}

// bytes returns the written data.
func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}
