package swf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// defaultMaxAssetSize bounds UnwrapAsset when the caller passes 0.
const defaultMaxAssetSize uint64 = 64 << 20

// ExtractBinaryData pairs DefineBinaryData tags with the symbol-class names
// that export them. Game clients publish each embedded configuration blob
// as a DefineBinaryData record and name it through a SymbolClass entry with
// the same character ID. Assets are returned in stream order; an asset with
// no SymbolClass entry is named by its character ID in decimal.
func ExtractBinaryData(m *Movie) ([]BinaryAsset, error) {
	names := make(map[uint16]string)
	for _, t := range m.Tags {
		if t.Code != TagSymbolClass {
			continue
		}
		if err := parseSymbolClass(t.Body, names); err != nil {
			return nil, err
		}
	}

	var assets []BinaryAsset
	for _, t := range m.Tags {
		if t.Code != TagDefineBinaryData {
			continue
		}
		// uint16 character ID + uint32 reserved precede the data.
		if len(t.Body) < 6 {
			return nil, fmt.Errorf("%w: DefineBinaryData body of %d bytes", ErrInvalidTag, len(t.Body))
		}
		id := binary.LittleEndian.Uint16(t.Body[0:2])
		name, ok := names[id]
		if !ok {
			name = strconv.FormatUint(uint64(id), 10)
		}
		assets = append(assets, BinaryAsset{Name: name, CharacterID: id, Data: t.Body[6:]})
	}
	return assets, nil
}

// parseSymbolClass reads a SymbolClass body: a uint16 entry count followed
// by (uint16 character ID, NUL-terminated name) pairs.
func parseSymbolClass(body []byte, names map[uint16]string) error {
	if len(body) < 2 {
		return fmt.Errorf("%w: SymbolClass body of %d bytes", ErrInvalidTag, len(body))
	}
	count := int(binary.LittleEndian.Uint16(body[0:2]))
	off := 2
	for i := 0; i < count; i++ {
		if off+2 > len(body) {
			return fmt.Errorf("%w: SymbolClass entry %d at offset %d", ErrInvalidTag, i, off)
		}
		id := binary.LittleEndian.Uint16(body[off : off+2])
		off += 2
		nul := bytes.IndexByte(body[off:], 0)
		if nul < 0 {
			return fmt.Errorf("%w: unterminated SymbolClass name at offset %d", ErrInvalidTag, off)
		}
		names[id] = string(body[off : off+nul])
		off += nul + 1
	}
	return nil
}

// UnwrapAsset removes the zlib wrapping some clients apply to individual
// asset payloads. Wrapped payloads start with the 0x78 0xDA zlib header;
// anything else is returned as-is. maxSize caps the unwrapped size
// (0 selects a 64 MiB default).
func UnwrapAsset(data []byte, maxSize uint64) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x78 || data[1] != 0xDA {
		return data, nil
	}
	if maxSize == 0 {
		maxSize = defaultMaxAssetSize
	}
	zr, err := zlibNewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: asset: %v", ErrDecompress, err)
	}
	defer zr.Close()
	b, err := readAll(io.LimitReader(zr, int64(maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: asset: %v", ErrDecompress, err)
	}
	if uint64(len(b)) > maxSize {
		return nil, fmt.Errorf("%w: asset expands past %d bytes", ErrLimitExceeded, maxSize)
	}
	return b, nil
}
