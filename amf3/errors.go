package amf3

import "errors"

var (
	ErrTruncated      = errors.New("amf3: truncated input")
	ErrUnknownMarker  = errors.New("amf3: unknown type marker")
	ErrBadReference   = errors.New("amf3: reference out of range")
	ErrInvalidUTF8    = errors.New("amf3: invalid utf-8 string")
	ErrExternalizable = errors.New("amf3: externalizable objects unsupported")
	ErrTooDeep        = errors.New("amf3: nesting too deep")
)
