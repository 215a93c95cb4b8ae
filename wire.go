package swf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type header struct {
	compression Compression
	version     uint8
	fileLength  uint32
	frameSize   Rect
	frameRate   uint16
	frameCount  uint16
	size        uint32 // uncompressed header bytes consumed
}

// readHeader reads the uncompressed header prefix: signature, version,
// total length, bit-packed bounding rectangle, frame rate and frame count.
// The body that follows is compressed according to the signature; the
// header itself never is.
func readHeader(r io.Reader) (header, error) {
	var fixed [fixedHeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return header{}, fmt.Errorf("%w: fixed header: %v", ErrTruncated, err)
	}
	var h header
	var sig [3]byte
	copy(sig[:], fixed[0:3])
	switch sig {
	case SignatureUncompressed:
		h.compression = CompNone
	case SignatureZlib:
		h.compression = CompZlib
	case SignatureLZMA:
		h.compression = CompLZMA
	default:
		return header{}, fmt.Errorf("%w: %q", ErrUnrecognizedSignature, sig[:])
	}
	h.version = fixed[3]
	h.fileLength = binary.LittleEndian.Uint32(fixed[4:8])

	rect, rectLen, err := readRect(r)
	if err != nil {
		return header{}, err
	}
	h.frameSize = rect

	var frame [4]byte
	if _, err := io.ReadFull(r, frame[:]); err != nil {
		return header{}, fmt.Errorf("%w: frame rate/count: %v", ErrTruncated, err)
	}
	h.frameRate = binary.LittleEndian.Uint16(frame[0:2])
	h.frameCount = binary.LittleEndian.Uint16(frame[2:4])

	h.size = fixedHeaderLen + rectLen + 4
	return h, nil
}

// readRect reads a bit-packed rectangle: a 5-bit field width followed by
// four signed fields of that width, padded to a byte boundary.
func readRect(r io.Reader) (Rect, uint32, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return Rect{}, 0, fmt.Errorf("%w: bounding rectangle: %v", ErrTruncated, err)
	}
	nbits := uint(first[0] >> 3)
	total := (5 + 4*nbits + 7) / 8 // bytes, including the one already read
	buf := make([]byte, total)
	buf[0] = first[0]
	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		return Rect{}, 0, fmt.Errorf("%w: bounding rectangle: %v", ErrTruncated, err)
	}
	br := bitReader{data: buf, pos: 5}
	var rect Rect
	for _, field := range []*int32{&rect.XMin, &rect.XMax, &rect.YMin, &rect.YMax} {
		v, err := br.readSigned(nbits)
		if err != nil {
			return Rect{}, 0, err
		}
		*field = v
	}
	return rect, uint32(total), nil
}

var errBitsExhausted = errors.New("swf: bit reader exhausted")

// bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	data []byte
	pos  uint // bit offset
}

func (br *bitReader) readUnsigned(n uint) (uint32, error) {
	if n > 32 || br.pos+n > uint(len(br.data))*8 {
		return 0, errBitsExhausted
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		byteIdx := (br.pos + i) / 8
		bitIdx := 7 - (br.pos+i)%8
		v = v<<1 | uint32(br.data[byteIdx]>>bitIdx)&1
	}
	br.pos += n
	return v, nil
}

func (br *bitReader) readSigned(n uint) (int32, error) {
	if n == 0 {
		return 0, nil
	}
	v, err := br.readUnsigned(n)
	if err != nil {
		return 0, err
	}
	if v&(1<<(n-1)) != 0 && n < 32 {
		v |= ^uint32(0) << n
	}
	return int32(v), nil
}
