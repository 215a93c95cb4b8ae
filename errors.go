package swf

import "errors"

var (
	ErrUnrecognizedSignature = errors.New("swf: unrecognized container signature")
	ErrInvalidHeader         = errors.New("swf: invalid header")
	ErrDecompress            = errors.New("swf: decompression failed")
	ErrLengthMismatch        = errors.New("swf: body length mismatch")
	ErrTruncated             = errors.New("swf: truncated container")
	ErrLimitExceeded         = errors.New("swf: limit exceeded")
	ErrInvalidTag            = errors.New("swf: invalid tag")
)
