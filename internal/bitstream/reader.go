package bitstream

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a read would run past the end of the
// underlying buffer.
var ErrOutOfRange = errors.New("read past end of bitstream")

// Reader extracts fixed-width unsigned integers from a byte buffer at
// arbitrary bit offsets. Fields are packed densely with no alignment to
// byte boundaries; within a field, bits are assembled least-significant
// first, so bit i of the stream is bit i%8 of byte i/8. One Reader owns
// one cursor and must not be shared between decodes.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits returns the next n bits as an unsigned integer and advances
// the cursor. n must be between 0 and 64.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("bit width %d out of range [0, 64]", n)
	}
	if r.pos+n > len(r.buf)*8 {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, %d available",
			ErrOutOfRange, n, r.pos, len(r.buf)*8-r.pos)
	}
	var value uint64
	for i := 0; i < n; i++ {
		abs := r.pos + i
		bit := (r.buf[abs>>3] >> uint(abs&7)) & 1
		value |= uint64(bit) << uint(i)
	}
	r.pos += n
	return value, nil
}

// Remaining reports how many unread bits are left in the buffer.
func (r *Reader) Remaining() int {
	return len(r.buf)*8 - r.pos
}
