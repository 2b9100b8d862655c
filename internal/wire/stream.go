// Package wire implements the binary stream format snapshots are flattened
// to: little-endian fixed-width fields plus pooled, deduplicated strings.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Writer accumulates an encoded stream in memory. All fixed-width values
// are little-endian. Writes to the underlying buffer cannot fail; only
// length-prefixed payloads can (ErrEncodingOverflow).
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty stream writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded stream so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteInt32 appends a little-endian int32.
func (w *Writer) WriteInt32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

// WriteFloat32 appends a little-endian IEEE 754 float32.
func (w *Writer) WriteFloat32(v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf.Write(b[:])
}

// WriteMarker appends a single marker byte.
func (w *Writer) WriteMarker(m byte) {
	w.buf.WriteByte(m)
}

// WriteString appends an int32 byte length followed by the raw UTF-8 bytes.
func (w *Writer) WriteString(s string) error {
	if len(s) > math.MaxInt32 {
		return fmt.Errorf("string of %d bytes: %w", len(s), ErrEncodingOverflow)
	}
	w.WriteInt32(int32(len(s)))
	w.buf.WriteString(s)
	return nil
}

// WriteBlob appends an int32 byte length followed by the raw bytes.
func (w *Writer) WriteBlob(b []byte) error {
	if len(b) > math.MaxInt32 {
		return fmt.Errorf("blob of %d bytes: %w", len(b), ErrEncodingOverflow)
	}
	w.WriteInt32(int32(len(b)))
	w.buf.Write(b)
	return nil
}

// Reader consumes an encoded stream from a byte slice. Every read checks
// the remaining length and fails with ErrCorruptStream on truncation, so a
// foreign or cut-off stream is rejected rather than misread.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadInt32 consumes a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("int32 at offset %d: %w", r.pos, ErrCorruptStream)
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadFloat32 consumes a little-endian float32.
func (r *Reader) ReadFloat32() (float32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("float32 at offset %d: %w", r.pos, ErrCorruptStream)
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadMarker consumes a single marker byte.
func (r *Reader) ReadMarker() (byte, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("marker at offset %d: %w", r.pos, ErrCorruptStream)
	}
	m := r.data[r.pos]
	r.pos++
	return m, nil
}

// ReadString consumes a length-prefixed UTF-8 string. A negative length or
// one exceeding the remaining bytes is corruption.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > r.Remaining() {
		return "", fmt.Errorf("string length %d with %d bytes left: %w", n, r.Remaining(), ErrCorruptStream)
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// ReadBlob consumes a length-prefixed byte payload. The returned slice
// aliases the stream buffer and must not be mutated.
func (r *Reader) ReadBlob() ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > r.Remaining() {
		return nil, fmt.Errorf("blob length %d with %d bytes left: %w", n, r.Remaining(), ErrCorruptStream)
	}
	return r.ReadBytes(int(n))
}

// ReadBytes consumes exactly n raw bytes. The returned slice aliases the
// stream buffer and must not be mutated.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%d raw bytes with %d left: %w", n, r.Remaining(), ErrCorruptStream)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
