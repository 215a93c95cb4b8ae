package swf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Decode reads one SWF container from r.
//
// The decoding process:
//  1. Reads the 3-byte signature and selects the compression mode
//  2. Reads the uncompressed header (version, total length, bounding
//     rectangle, frame rate, frame count)
//  3. Decompresses the body and verifies it against the total-length field
//  4. Scans the body into an ordered tag list, stopping at the End tag
//
// By default, Decode uses safe size limits (256 MiB body, 128 MiB per tag);
// use WithReadLimits to change them. The declared body size is checked
// against the limit before any decompression happens.
//
// Decode returns ErrUnrecognizedSignature for an unknown signature,
// ErrLimitExceeded if a size limit would be exceeded, ErrDecompress on
// corrupt compressed data, ErrLengthMismatch if the decompressed body does
// not match the total-length field exactly, and ErrTruncated if the header
// or body ends early.
func Decode(r io.Reader, opts ...ReadOption) (*Movie, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if h.fileLength < h.size {
		return nil, fmt.Errorf("%w: total length %d smaller than header size %d",
			ErrInvalidHeader, h.fileLength, h.size)
	}
	expected := uint64(h.fileLength - h.size)
	if expected > cfg.limits.MaxBodySize {
		return nil, fmt.Errorf("%w: declared body size %d", ErrLimitExceeded, expected)
	}

	body, err := decompressBody(h.compression, r, expected)
	if err != nil {
		return nil, err
	}
	if uint64(len(body)) != expected {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d",
			ErrLengthMismatch, len(body), expected)
	}

	tags, err := scanTags(body, cfg.limits)
	if err != nil {
		return nil, err
	}
	return &Movie{
		Compression: h.compression,
		Version:     h.version,
		FileLength:  h.fileLength,
		FrameSize:   h.frameSize,
		FrameRate:   h.frameRate,
		FrameCount:  h.frameCount,
		Tags:        tags,
	}, nil
}

// scanTags splits the decompressed body into records. Each record starts
// with a 2-byte little-endian header: top 10 bits type code, low 6 bits
// length. A length of 63 means a 4-byte little-endian long-form length
// follows. An End tag (code 0, length 0) terminates the scan; running out
// of bytes before it is an error.
func scanTags(body []byte, limits Limits) ([]Tag, error) {
	var tags []Tag
	off := 0
	for {
		if off+2 > len(body) {
			return nil, fmt.Errorf("%w: tag header at offset %d", ErrTruncated, off)
		}
		hdr := binary.LittleEndian.Uint16(body[off : off+2])
		code := hdr >> tagCodeShift
		length := uint32(hdr & tagLengthMask)
		off += 2
		if length == uint32(tagLongForm) {
			if off+4 > len(body) {
				return nil, fmt.Errorf("%w: long tag length at offset %d", ErrTruncated, off)
			}
			length = binary.LittleEndian.Uint32(body[off : off+4])
			off += 4
		}
		if code == TagEnd && length == 0 {
			return tags, nil
		}
		if uint64(length) > limits.MaxTagSize {
			return nil, fmt.Errorf("%w: tag %d declares %d bytes at offset %d",
				ErrLimitExceeded, code, length, off)
		}
		if off+int(length) > len(body) {
			return nil, fmt.Errorf("%w: tag %d needs %d bytes at offset %d",
				ErrTruncated, code, length, off)
		}
		tags = append(tags, Tag{Code: code, Body: body[off : off+int(length)]})
		off += int(length)
	}
}
