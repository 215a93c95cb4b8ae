package amf3

import "fmt"

// reader is a byte cursor over one encoded payload. All reads fail with
// ErrTruncated carrying the offset at which bytes ran out.
type reader struct {
	data []byte
	off  int
}

func (r *reader) readByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrTruncated, r.off)
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", ErrTruncated, n, r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// readU29 reads the 1-4 byte variable-length 29-bit integer. The first
// three bytes contribute 7 bits each, high bit meaning "continue"; a fourth
// byte contributes all 8 bits. Most-significant chunk first.
func (r *reader) readU29() (uint32, error) {
	var v uint32
	for i := 0; ; i++ {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if i == 3 {
			return v<<8 | uint32(b), nil
		}
		v = v<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// asSigned reinterprets a raw 29-bit value as signed: values at or above
// 2^28 wrap to negative. Lengths and reference indices always use the
// unsigned form.
func asSigned(v uint32) int32 {
	if v >= 1<<28 {
		return int32(v) - 1<<29
	}
	return int32(v)
}
