package amf3

import (
	"bytes"
	"encoding/binary"
	"math"
)

// encoder is a reference encoder used only by tests: it produces streams
// the decoder must accept, interning strings the same way the wire format
// does. Arrays, objects, dates and byte arrays are always written inline;
// back-reference cases are hand-crafted in the tests that need them.
type encoder struct {
	buf     bytes.Buffer
	strings map[string]uint32
}

func newEncoder() *encoder {
	return &encoder{strings: make(map[string]uint32)}
}

func (e *encoder) writeU29(v uint32) {
	switch {
	case v < 1<<7:
		e.buf.WriteByte(byte(v))
	case v < 1<<14:
		e.buf.WriteByte(byte(v>>7) | 0x80)
		e.buf.WriteByte(byte(v & 0x7F))
	case v < 1<<21:
		e.buf.WriteByte(byte(v>>14) | 0x80)
		e.buf.WriteByte(byte(v>>7)&0x7F | 0x80)
		e.buf.WriteByte(byte(v & 0x7F))
	default:
		e.buf.WriteByte(byte(v>>22) | 0x80)
		e.buf.WriteByte(byte(v>>15)&0x7F | 0x80)
		e.buf.WriteByte(byte(v>>8)&0x7F | 0x80)
		e.buf.WriteByte(byte(v))
	}
}

func (e *encoder) writeDouble(f float64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	e.buf.Write(b[:])
}

func (e *encoder) writeString(s string) {
	if s == "" {
		e.writeU29(1)
		return
	}
	if idx, ok := e.strings[s]; ok {
		e.writeU29(idx << 1)
		return
	}
	e.writeU29(uint32(len(s))<<1 | 1)
	e.buf.WriteString(s)
	e.strings[s] = uint32(len(e.strings))
}

func (e *encoder) writeValue(v Value) {
	switch v.Kind {
	case KindUndefined:
		e.buf.WriteByte(markerUndefined)
	case KindNull:
		e.buf.WriteByte(markerNull)
	case KindBool:
		if v.Bool {
			e.buf.WriteByte(markerTrue)
		} else {
			e.buf.WriteByte(markerFalse)
		}
	case KindInt:
		e.buf.WriteByte(markerInteger)
		e.writeU29(uint32(v.Int) & (1<<29 - 1))
	case KindDouble:
		e.buf.WriteByte(markerDouble)
		e.writeDouble(v.Double)
	case KindString:
		e.buf.WriteByte(markerString)
		e.writeString(v.Str)
	case KindXMLDoc:
		e.buf.WriteByte(markerXMLDoc)
		e.writeString(v.Str)
	case KindXML:
		e.buf.WriteByte(markerXML)
		e.writeString(v.Str)
	case KindDate:
		e.buf.WriteByte(markerDate)
		e.writeU29(1)
		e.writeDouble(v.Double)
	case KindArray:
		e.buf.WriteByte(markerArray)
		e.writeU29(1)
		for _, m := range v.Array.Assoc {
			e.writeString(m.Name)
			e.writeValue(m.Value)
		}
		e.writeString("")
		e.writeU29(uint32(len(v.Array.Dense)))
		for _, elem := range v.Array.Dense {
			e.writeValue(elem)
		}
	case KindObject:
		e.buf.WriteByte(markerObject)
		e.writeU29(1)
		var flags uint32 = 1
		if v.Object.Dynamic {
			flags |= 4
		}
		e.writeU29(uint32(len(v.Object.Members))<<3 | flags)
		e.writeString(v.Object.ClassName)
		for _, m := range v.Object.Members {
			e.writeString(m.Name)
		}
		for _, m := range v.Object.Members {
			e.writeValue(m.Value)
		}
		if v.Object.Dynamic {
			e.writeString("")
		}
	case KindByteArray:
		e.buf.WriteByte(markerByteArray)
		e.writeU29(uint32(len(v.Bytes))<<1 | 1)
		e.buf.Write(v.Bytes)
	}
}

func encodeValue(v Value) []byte {
	e := newEncoder()
	e.writeValue(v)
	return e.buf.Bytes()
}
