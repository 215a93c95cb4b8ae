package amf3

import (
	"strconv"
	"time"
)

// Kind discriminates the closed set of decoded value variants. The marker
// byte in the stream is the single source of truth for which variant a
// value carries; an unrecognized marker fails the decode instead of
// coercing.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt
	KindDouble
	KindString
	KindXMLDoc
	KindDate
	KindArray
	KindObject
	KindXML
	KindByteArray
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindXMLDoc:
		return "xml-doc"
	case KindDate:
		return "date"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindXML:
		return "xml"
	case KindByteArray:
		return "byte-array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one decoded AMF3 value. Only the field selected by Kind is
// meaningful:
//
//	KindBool                    Bool
//	KindInt                     Int (29-bit signed range)
//	KindDouble                  Double
//	KindString/XMLDoc/XML       Str
//	KindDate                    Double (milliseconds since epoch)
//	KindArray                   Array
//	KindObject                  Object
//	KindByteArray               Bytes
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int32
	Double float64
	Str    string
	Bytes  []byte
	Array  *Array
	Object *Object
}

// Member is one named field of an object or one associative array entry.
// Order is the order of appearance in the stream.
type Member struct {
	Name  string
	Value Value
}

// Array holds the two parts of an AMF3 array: string-keyed associative
// entries and the integer-indexed dense part. Both preserve stream order.
type Array struct {
	Assoc []Member
	Dense []Value
}

// Object is a typed or anonymous object. Members holds the declared
// (sealed) fields in declaration order, followed by any dynamic fields in
// stream order when Dynamic is set.
type Object struct {
	ClassName string
	Dynamic   bool
	Members   []Member
}

// Interface converts v to plain Go values for JSON- or XML-oriented
// consumers: nil, bool, int32, float64, string, []byte, time.Time, []any
// and map[string]any. Objects with a class name carry it under the
// "__class__" key. Arrays with associative entries become maps, with dense
// entries keyed by their decimal index.
func (v Value) Interface() any {
	switch v.Kind {
	case KindUndefined, KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindDouble:
		return v.Double
	case KindString, KindXMLDoc, KindXML:
		return v.Str
	case KindDate:
		return time.UnixMilli(int64(v.Double)).UTC()
	case KindByteArray:
		return v.Bytes
	case KindArray:
		if len(v.Array.Assoc) == 0 {
			out := make([]any, len(v.Array.Dense))
			for i, e := range v.Array.Dense {
				out[i] = e.Interface()
			}
			return out
		}
		out := make(map[string]any, len(v.Array.Assoc)+len(v.Array.Dense))
		for _, m := range v.Array.Assoc {
			out[m.Name] = m.Value.Interface()
		}
		for i, e := range v.Array.Dense {
			out[strconv.Itoa(i)] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Object.Members)+1)
		if v.Object.ClassName != "" {
			out["__class__"] = v.Object.ClassName
		}
		for _, m := range v.Object.Members {
			out[m.Name] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
