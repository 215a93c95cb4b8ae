package swf

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/seerapi/go-swf/amf3"
)

// A zlib-compressed container holding one short tag of type 82 whose
// payload is a minimal inline object: anonymous, non-dynamic, one declared
// member "value" holding the integer 42.
func TestScenario_ZlibContainerWithInlineObject(t *testing.T) {
	payload := []byte{
		0x0A,                    // object marker
		0x01,                    // inline object
		0x09,                    // inline traits, not dynamic, one member
		0x01,                    // class name ""
		0x0B, 'v', 'a', 'l', 'u', 'e', // member name "value"
		0x04, 0x2A, // integer 42
	}
	raw := encodeContainer(t, CompZlib, encodeBody([]Tag{{Code: 82, Body: payload}}))

	m, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m.Tags) != 1 || m.Tags[0].Code != 82 {
		t.Fatalf("tags: %#v", m.Tags)
	}

	got, err := amf3.Decode(m.Tags[0].Body)
	if err != nil {
		t.Fatalf("amf3.Decode: %v", err)
	}
	want := amf3.Value{Kind: amf3.KindObject, Object: &amf3.Object{
		ClassName: "",
		Dynamic:   false,
		Members: []amf3.Member{
			{Name: "value", Value: amf3.Value{Kind: amf3.KindInt, Int: 42}},
		},
	}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("value mismatch\nwant: %#v\ngot:  %#v", want, got)
	}
}

// End-to-end shape of the real extraction pipeline: a zlib container whose
// DefineBinaryData record carries a zlib-wrapped AMF3 payload published
// under a SymbolClass name.
func TestScenario_ExtractAndDecodeAsset(t *testing.T) {
	inner := []byte{
		0x09,       // array marker
		0x01,       // inline
		0x01,       // no associative part
		0x03,       // dense length 3
		0x03,       // true
		0x01,       // null
		0x05, 0x40, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // double 3.5
	}
	tags := []Tag{
		{Code: TagSymbolClass, Body: symbolClassBody(map[uint16]string{
			3: "com.robot.core.config.xml.SkillXMLInfo_xmlClass",
		}, []uint16{3})},
		{Code: TagDefineBinaryData, Body: binaryDataBody(3, inner)},
	}
	raw := encodeContainer(t, CompZlib, encodeBody(tags))

	m, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	assets, err := ExtractBinaryData(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 1 || assets[0].Name != "com.robot.core.config.xml.SkillXMLInfo_xmlClass" {
		t.Fatalf("assets: %#v", assets)
	}

	payload, err := UnwrapAsset(assets[0].Data, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := amf3.Decode(payload)
	if err != nil {
		t.Fatal(err)
	}
	want := amf3.Value{Kind: amf3.KindArray, Array: &amf3.Array{
		Dense: []amf3.Value{
			{Kind: amf3.KindBool, Bool: true},
			{Kind: amf3.KindNull},
			{Kind: amf3.KindDouble, Double: 3.5},
		},
	}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("value mismatch\nwant: %#v\ngot:  %#v", want, got)
	}
}
