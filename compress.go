package swf

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/ulikunitz/xz/lzma"
)

// Function variables for testing injection.
var (
	zlibNewReader = func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }
	lzmaNewReader = func(r io.Reader) (io.Reader, error) { return lzma.NewReader(r) }
	readAll       = io.ReadAll
)

// decompressBody reads the container body from r according to the
// compression mode and returns exactly the decompressed bytes. expected is
// the decompressed size the header promises; reads are capped at expected+1
// so a lying stream cannot expand past it. The caller compares the returned
// length against expected.
func decompressBody(comp Compression, r io.Reader, expected uint64) ([]byte, error) {
	switch comp {
	case CompNone:
		b, err := readAll(io.LimitReader(r, int64(expected)+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return b, nil
	case CompZlib:
		zr, err := zlibNewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zlib: %v", ErrDecompress, err)
		}
		defer zr.Close()
		b, err := readAll(io.LimitReader(zr, int64(expected)+1))
		if err != nil {
			return nil, fmt.Errorf("%w: zlib: %v", ErrDecompress, err)
		}
		return b, nil
	case CompLZMA:
		lr, err := lzmaNewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: lzma: %v", ErrDecompress, err)
		}
		b, err := readAll(io.LimitReader(lr, int64(expected)+1))
		if err != nil {
			return nil, fmt.Errorf("%w: lzma: %v", ErrDecompress, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: compression mode %d", ErrUnrecognizedSignature, comp)
	}
}
