package mqcoder

import "fmt"

// ByteStream is the sole I/O collaborator a Coder needs. Implementations
// back the coder's byte transfer (encode) and fill (decode) procedures.
//
// A stream is owned exclusively by one Coder between calls to ChangeStream.
// Termination may truncate a stream's tail (RemoveByte / RemoveBytes) but
// never rewrites earlier bytes.
type ByteStream interface {
	// PutByte appends one byte to the stream.
	PutByte(b byte) error
	// GetByte reads the byte at offset i (0-based). It fails if i is out
	// of range.
	GetByte(i int) (byte, error)
	// Length returns the current number of bytes in the stream.
	Length() int
	// RemoveByte drops the last byte. It fails if the stream is empty.
	RemoveByte() error
	// RemoveBytes drops the last n bytes. It fails if n exceeds Length().
	RemoveBytes(n int) error
}

// Buffer is an in-memory ByteStream backed by a plain byte slice. It is the
// reference ByteStream implementation used whenever a caller does not
// supply its own, grounded in the accumulation pattern the MQ encoder uses
// for its output buffer: append on write, slice-shrink on truncate.
type Buffer struct {
	data []byte
}

// NewBuffer creates a Buffer, optionally pre-loaded with data (for decode).
// Passing nil starts an empty buffer (for encode).
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{}
	if len(data) > 0 {
		b.data = append(b.data, data...)
	}
	return b
}

// PutByte implements ByteStream.
func (b *Buffer) PutByte(v byte) error {
	b.data = append(b.data, v)
	return nil
}

// GetByte implements ByteStream.
func (b *Buffer) GetByte(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("mqcoder: buffer read at %d out of range [0,%d)", i, len(b.data))
	}
	return b.data[i], nil
}

// Length implements ByteStream.
func (b *Buffer) Length() int {
	return len(b.data)
}

// RemoveByte implements ByteStream.
func (b *Buffer) RemoveByte() error {
	return b.RemoveBytes(1)
}

// RemoveBytes implements ByteStream.
func (b *Buffer) RemoveBytes(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("mqcoder: cannot remove %d bytes from buffer of length %d", n, len(b.data))
	}
	b.data = b.data[:len(b.data)-n]
	return nil
}

// Bytes returns the buffer's current contents. The returned slice aliases
// the buffer's internal storage and must not be mutated by the caller.
func (b *Buffer) Bytes() []byte {
	return b.data
}
