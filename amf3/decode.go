package amf3

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	markerUndefined = 0x00
	markerNull      = 0x01
	markerFalse     = 0x02
	markerTrue      = 0x03
	markerInteger   = 0x04
	markerDouble    = 0x05
	markerString    = 0x06
	markerXMLDoc    = 0x07
	markerDate      = 0x08
	markerArray     = 0x09
	markerObject    = 0x0A
	markerXML       = 0x0B
	markerByteArray = 0x0C
)

const defaultMaxDepth = 512

type decodeConfig struct {
	maxDepth int
}

type Option func(*decodeConfig)

// WithMaxDepth changes the composite-nesting bound. Crafted input can nest
// arrays and objects arbitrarily; the decoder fails with ErrTooDeep instead
// of overflowing the call stack.
func WithMaxDepth(n int) Option {
	return func(c *decodeConfig) { c.maxDepth = n }
}

// Decode reads one AMF3 value from data.
//
// Reference tables are fresh for every call and discarded afterward, so
// repeated strings, traits, objects and byte arrays deduplicate within one
// payload and never across payloads. Bytes after the first complete value
// are ignored.
//
// Any failure aborts the whole decode; no partial value is returned. All
// errors wrap one of the package sentinels and carry the byte offset at
// which they were detected.
func Decode(data []byte, opts ...Option) (Value, error) {
	cfg := decodeConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &decoder{
		r:        reader{data: data},
		tables:   &refTables{},
		maxDepth: cfg.maxDepth,
	}
	return d.decodeValue(0)
}

type decoder struct {
	r        reader
	tables   *refTables
	maxDepth int
}

func (d *decoder) decodeValue(depth int) (Value, error) {
	if depth > d.maxDepth {
		return Value{}, fmt.Errorf("%w: depth %d at offset %d", ErrTooDeep, depth, d.r.off)
	}
	markerOff := d.r.off
	marker, err := d.r.readByte()
	if err != nil {
		return Value{}, err
	}
	switch marker {
	case markerUndefined:
		return Value{Kind: KindUndefined}, nil
	case markerNull:
		return Value{Kind: KindNull}, nil
	case markerFalse:
		return Value{Kind: KindBool, Bool: false}, nil
	case markerTrue:
		return Value{Kind: KindBool, Bool: true}, nil
	case markerInteger:
		v, err := d.r.readU29()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: asSigned(v)}, nil
	case markerDouble:
		f, err := d.readDouble()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindDouble, Double: f}, nil
	case markerString:
		s, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	case markerXMLDoc:
		s, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindXMLDoc, Str: s}, nil
	case markerXML:
		s, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindXML, Str: s}, nil
	case markerDate:
		return d.decodeDate()
	case markerArray:
		return d.decodeArray(depth)
	case markerObject:
		return d.decodeObject(depth)
	case markerByteArray:
		return d.decodeByteArray()
	default:
		return Value{}, fmt.Errorf("%w: 0x%02X at offset %d", ErrUnknownMarker, marker, markerOff)
	}
}

func (d *decoder) readDouble() (float64, error) {
	b, err := d.r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// readString implements the string-table protocol: a varint header whose
// low bit selects between a table reference (header>>1 is the index) and an
// inline value (header>>1 is the UTF-8 byte length). Non-empty inline
// strings are interned for later references; the empty string never is.
func (d *decoder) readString() (string, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return "", err
	}
	if h&1 == 0 {
		idx := h >> 1
		if idx >= uint32(len(d.tables.strings)) {
			return "", fmt.Errorf("%w: string %d of %d at offset %d",
				ErrBadReference, idx, len(d.tables.strings), hdrOff)
		}
		return d.tables.strings[idx], nil
	}
	n := int(h >> 1)
	b, err := d.r.readBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: at offset %d", ErrInvalidUTF8, hdrOff)
	}
	s := string(b)
	if s != "" {
		d.tables.strings = append(d.tables.strings, s)
	}
	return s, nil
}

// objectRef resolves a back-reference into the object table, shared by
// dates, arrays and objects.
func (d *decoder) objectRef(idx uint32, hdrOff int) (Value, error) {
	if idx >= uint32(len(d.tables.objects)) {
		return Value{}, fmt.Errorf("%w: object %d of %d at offset %d",
			ErrBadReference, idx, len(d.tables.objects), hdrOff)
	}
	return d.tables.objects[idx], nil
}

// decodeDate reads a date after its marker: a reference/inline header
// against the object table, then 8 bytes of big-endian double holding
// milliseconds since epoch. The inline header's low bit carries no further
// meaning for dates.
func (d *decoder) decodeDate() (Value, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return Value{}, err
	}
	if h&1 == 0 {
		return d.objectRef(h>>1, hdrOff)
	}
	ms, err := d.readDouble()
	if err != nil {
		return Value{}, err
	}
	v := Value{Kind: KindDate, Double: ms}
	d.tables.objects = append(d.tables.objects, v)
	return v, nil
}

// decodeArray reads an array after its marker. Inline layout: the header
// (upper bits unused), associative string-keyed pairs terminated by the
// empty-string key, then a varint dense length followed by that many
// values. The array is interned before its contents so nested values see
// table indices in encounter order.
func (d *decoder) decodeArray(depth int) (Value, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return Value{}, err
	}
	if h&1 == 0 {
		return d.objectRef(h>>1, hdrOff)
	}
	arr := &Array{}
	v := Value{Kind: KindArray, Array: arr}
	d.tables.objects = append(d.tables.objects, v)

	for {
		key, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		if key == "" {
			break
		}
		elem, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		arr.Assoc = append(arr.Assoc, Member{Name: key, Value: elem})
	}

	n, err := d.r.readU29()
	if err != nil {
		return Value{}, err
	}
	for i := uint32(0); i < n; i++ {
		elem, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		arr.Dense = append(arr.Dense, elem)
	}
	return v, nil
}

// decodeObject reads an object after its marker: a reference/inline header
// against the object table, the trait descriptor, one value per declared
// member in declaration order, and dynamic key/value pairs terminated by
// the empty-string key when the traits allow them.
func (d *decoder) decodeObject(depth int) (Value, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return Value{}, err
	}
	if h&1 == 0 {
		return d.objectRef(h>>1, hdrOff)
	}
	t, err := d.readTraits()
	if err != nil {
		return Value{}, err
	}
	obj := &Object{ClassName: t.className, Dynamic: t.dynamic}
	v := Value{Kind: KindObject, Object: obj}
	d.tables.objects = append(d.tables.objects, v)

	for _, name := range t.members {
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		obj.Members = append(obj.Members, Member{Name: name, Value: val})
	}
	if t.dynamic {
		for {
			key, err := d.readString()
			if err != nil {
				return Value{}, err
			}
			if key == "" {
				break
			}
			val, err := d.decodeValue(depth + 1)
			if err != nil {
				return Value{}, err
			}
			obj.Members = append(obj.Members, Member{Name: key, Value: val})
		}
	}
	return v, nil
}

// readTraits reads a trait header: low bit selects inline (1) against a
// trait-table reference (0, header>>1 is the index). Inline headers encode
// the externalizable flag in bit 1, the dynamic flag in bit 2 and the
// declared member count in the remaining bits. Externalizable objects carry
// opaque class-defined encodings and are rejected.
func (d *decoder) readTraits() (*traits, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return nil, err
	}
	if h&1 == 0 {
		idx := h >> 1
		if idx >= uint32(len(d.tables.traits)) {
			return nil, fmt.Errorf("%w: traits %d of %d at offset %d",
				ErrBadReference, idx, len(d.tables.traits), hdrOff)
		}
		return d.tables.traits[idx], nil
	}
	if h&2 != 0 {
		return nil, fmt.Errorf("%w: at offset %d", ErrExternalizable, hdrOff)
	}
	t := &traits{dynamic: h&4 != 0}
	t.className, err = d.readString()
	if err != nil {
		return nil, err
	}
	count := h >> 3
	for i := uint32(0); i < count; i++ {
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		t.members = append(t.members, name)
	}
	d.tables.traits = append(d.tables.traits, t)
	return t, nil
}

// decodeByteArray reads a byte array after its marker: a reference/inline
// header against the dedicated byte-array table; inline, header>>1 is the
// byte length and the payload is copied verbatim with no interpretation.
func (d *decoder) decodeByteArray() (Value, error) {
	hdrOff := d.r.off
	h, err := d.r.readU29()
	if err != nil {
		return Value{}, err
	}
	if h&1 == 0 {
		idx := h >> 1
		if idx >= uint32(len(d.tables.byteArrays)) {
			return Value{}, fmt.Errorf("%w: byte array %d of %d at offset %d",
				ErrBadReference, idx, len(d.tables.byteArrays), hdrOff)
		}
		return Value{Kind: KindByteArray, Bytes: d.tables.byteArrays[idx]}, nil
	}
	raw, err := d.r.readBytes(int(h >> 1))
	if err != nil {
		return Value{}, err
	}
	b := make([]byte, len(raw))
	copy(b, raw)
	d.tables.byteArrays = append(d.tables.byteArrays, b)
	return Value{Kind: KindByteArray, Bytes: b}, nil
}
