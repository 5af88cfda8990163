package mutf8

import (
	"testing"
	"unsafe"

	"golang.org/x/text/transform"
)

func TestDecodeASCIIBorrowsNoCopy(t *testing.T) {
	b := []byte("hello")
	s, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "hello" {
		t.Fatalf("Decode: got %q", s)
	}
	if unsafe.StringData(s) != &b[0] {
		t.Fatal("Decode copied instead of borrowing")
	}
}

func TestDecodeOverlongNUL(t *testing.T) {
	b := []byte{0xC0, 0x80}
	s, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "\x00" {
		t.Fatalf("Decode: got %q, want NUL", s)
	}
}

func TestDecodeSurrogatePair(t *testing.T) {
	// U+1F600 (grinning face) as a CESU-8 surrogate pair: D83D DE00.
	b := []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
	s, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r := []rune(s)
	if len(r) != 1 || r[0] != 0x1F600 {
		t.Fatalf("Decode: got %U, want U+1F600", r)
	}
}

func TestEncodeNUL(t *testing.T) {
	b := Encode("\x00")
	if len(b) != 2 || b[0] != 0xC0 || b[1] != 0x80 {
		t.Fatalf("Encode: got %x, want C0 80", b)
	}
}

func TestEncodeSupplementary(t *testing.T) {
	b := Encode(string(rune(0x1F600)))
	want := []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
	if string(b) != string(want) {
		t.Fatalf("Encode: got %x, want %x", b, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{"", "plain ascii", "snowman ☃", "\x00null", string(rune(0x10000))}
	for _, s := range cases {
		encoded := Encode(s)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if decoded != s {
			t.Fatalf("round trip: got %q, want %q", decoded, s)
		}
	}
}

func TestEncodeNoRewriteFastPath(t *testing.T) {
	s := "no special chars"
	b := Encode(s)
	if string(b) != s {
		t.Fatalf("Encode: got %q", b)
	}
}

func TestDecodeInvalidContinuation(t *testing.T) {
	b := []byte{0xC2, 0x00}
	_, err := Decode(b)
	if err == nil {
		t.Fatal("expected decode error")
	}
	var decErr *DecodeError
	if !asDecodeError(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func asDecodeError(err error, target **DecodeError) bool {
	if e, ok := err.(*DecodeError); ok {
		*target = e
		return true
	}
	return false
}

func TestEncodingDecoderRoundTrip(t *testing.T) {
	cases := []string{"", "plain ascii", "snowman ☃", "\x00null", string(rune(0x10000))}
	for _, s := range cases {
		encoded := Encode(s)
		decoded, _, err := transform.Bytes(Encoding.NewDecoder(), encoded)
		if err != nil {
			t.Fatalf("Encoding.NewDecoder().Transform(%q): %v", s, err)
		}
		if string(decoded) != s {
			t.Fatalf("round trip via Encoding: got %q, want %q", decoded, s)
		}
	}
}

func TestEncodingEncoderMatchesEncode(t *testing.T) {
	s := "needs " + string(rune(0x1F600)) + " rewrite \x00"
	want := Encode(s)
	got, _, err := transform.Bytes(Encoding.NewEncoder(), []byte(s))
	if err != nil {
		t.Fatalf("Encoding.NewEncoder().Transform: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Encoding encoder: got %x, want %x", got, want)
	}
}

func TestEncodingDecoderRejectsInvalidSequence(t *testing.T) {
	b := []byte{0xC2, 0x00}
	_, _, err := transform.Bytes(Encoding.NewDecoder(), b)
	if err == nil {
		t.Fatal("expected decode error via Encoding")
	}
}
