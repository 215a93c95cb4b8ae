package swf

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitReader(t *testing.T) {
	br := bitReader{data: []byte{0b10110100, 0b01101000}}
	v, err := br.readUnsigned(3)
	if err != nil || v != 0b101 {
		t.Fatalf("got %b, %v", v, err)
	}
	v, err = br.readUnsigned(5)
	if err != nil || v != 0b10100 {
		t.Fatalf("got %b, %v", v, err)
	}
	s, err := br.readSigned(4)
	if err != nil || s != 6 { // 0110
		t.Fatalf("got %d, %v", s, err)
	}
	s, err = br.readSigned(4)
	if err != nil || s != -8 { // 1000 sign-extends
		t.Fatalf("got %d, %v", s, err)
	}
}

func TestBitReader_Exhausted(t *testing.T) {
	br := bitReader{data: []byte{0xFF}}
	if _, err := br.readUnsigned(9); !errors.Is(err, errBitsExhausted) {
		t.Fatalf("expected errBitsExhausted, got %v", err)
	}
}

func TestBitReader_ZeroWidthSigned(t *testing.T) {
	br := bitReader{data: nil}
	s, err := br.readSigned(0)
	if err != nil || s != 0 {
		t.Fatalf("got %d, %v", s, err)
	}
}

func TestReadRect_ZeroBits(t *testing.T) {
	rect, n, err := readRect(bytes.NewReader([]byte{0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if rect != (Rect{}) || n != 1 {
		t.Fatalf("got %+v, %d", rect, n)
	}
}

func TestReadRect_RoundTrip(t *testing.T) {
	want := Rect{XMin: -100, XMax: 100, YMin: 0, YMax: 4095}
	buf := encodeRect(want, 13)
	rect, n, err := readRect(bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if rect != want {
		t.Fatalf("rect mismatch: got %+v want %+v", rect, want)
	}
	if int(n) != len(buf) {
		t.Fatalf("consumed %d of %d bytes", n, len(buf))
	}
}

func TestReadRect_Truncated(t *testing.T) {
	// Declares 15-bit fields but the stream ends after the first byte.
	buf := encodeRect(Rect{XMax: 100}, 15)
	_, _, err := readRect(bytes.NewReader(buf[:1]))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
