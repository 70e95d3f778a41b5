package encoding

import (
	"bytes"
	"testing"
)

func TestNewTextEncoder(t *testing.T) {
	encoder, err := NewTextEncoder("utf-8")
	if err != nil {
		t.Fatalf("NewTextEncoder() returned error: %v", err)
	}

	if encoder.Encoding != "utf-8" {
		t.Errorf("Expected encoding to be utf-8, got %s", encoder.Encoding)
	}

	if encoder.state == nil {
		t.Error("encoder.state should not be nil")
	}
}

func TestNewTextEncoder_UnknownLabel(t *testing.T) {
	_, err := NewTextEncoder("iso-2022-cn")
	if err == nil {
		t.Fatal("expected an error for an unrecognized label")
	}
}

func TestTextEncoder_Encode_BasicASCII(t *testing.T) {
	encoder, _ := NewTextEncoder("utf-8")

	testCases := []struct {
		input    string
		expected []byte
		desc     string
	}{
		{"", []byte{}, "empty string"},
		{"A", []byte{0x41}, "single ASCII character"},
		{"Hello", []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}, "ASCII string"},
		{"123", []byte{0x31, 0x32, 0x33}, "numeric string"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			result, err := encoder.Encode(tc.input)
			if err != nil {
				t.Errorf("Encode(%q) returned error: %v", tc.input, err)
				return
			}
			if !bytes.Equal(result, tc.expected) {
				t.Errorf("Encode(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestTextEncoder_Encode_UTF8(t *testing.T) {
	encoder, _ := NewTextEncoder("utf-8")

	testCases := []struct {
		input    string
		expected []byte
		desc     string
	}{
		{"café", []byte{0x63, 0x61, 0x66, 0xc3, 0xa9}, "Latin with accent"},
		{"水", []byte{0xe6, 0xb0, 0xb4}, "CJK character"},
		{"€", []byte{0xe2, 0x82, 0xac}, "Euro symbol"},
		{"🌟", []byte{0xf0, 0x9f, 0x8c, 0x9f}, "Emoji"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			result, err := encoder.Encode(tc.input)
			if err != nil {
				t.Errorf("Encode(%q) returned error: %v", tc.input, err)
				return
			}
			if !bytes.Equal(result, tc.expected) {
				t.Errorf("Encode(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestTextEncoder_Encode_SurrogatePairs(t *testing.T) {
	encoder, _ := NewTextEncoder("utf-8")

	input := "\U0001D11E"
	expected := []byte{0xf0, 0x9d, 0x84, 0x9e}

	result, err := encoder.Encode(input)
	if err != nil {
		t.Fatalf("Encode(%q) returned error: %v", input, err)
	}
	if !bytes.Equal(result, expected) {
		t.Errorf("Encode(%q) = %v, expected %v", input, result, expected)
	}
}

func TestTextEncoder_Encode_UTF16(t *testing.T) {
	le, _ := NewTextEncoder("utf-16le")
	be, _ := NewTextEncoder("utf-16be")

	leResult, err := le.Encode("A水")
	if err != nil {
		t.Fatalf("utf-16le Encode returned error: %v", err)
	}
	if !bytes.Equal(leResult, []byte{0x41, 0x00, 0x34, 0x6C}) {
		t.Errorf("utf-16le Encode(\"A水\") = %v", leResult)
	}

	beResult, err := be.Encode("A水")
	if err != nil {
		t.Fatalf("utf-16be Encode returned error: %v", err)
	}
	if !bytes.Equal(beResult, []byte{0x00, 0x41, 0x6C, 0x34}) {
		t.Errorf("utf-16be Encode(\"A水\") = %v", beResult)
	}
}

func TestTextEncoder_Encode_ShiftJIS(t *testing.T) {
	encoder, _ := NewTextEncoder("shift_jis")

	result, err := encoder.Encode("あ")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(result, []byte{0x82, 0xA0}) {
		t.Errorf("Encode(U+3042) = %v, expected [0x82 0xA0]", result)
	}
}

func TestTextEncoder_Encode_GB18030(t *testing.T) {
	encoder, _ := NewTextEncoder("gb18030")

	result, err := encoder.Encode("€")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(result, []byte{0xA2, 0xE3}) {
		t.Errorf("Encode(€) = %v, expected [0xA2 0xE3]", result)
	}

	fourByte, err := encoder.Encode("\U0001F4A9")
	if err != nil {
		t.Fatalf("Encode(poop emoji) returned error: %v", err)
	}
	if !bytes.Equal(fourByte, []byte{0x95, 0x32, 0x82, 0x36}) {
		t.Errorf("Encode(U+1F4A9) = %v, expected [0x95 0x32 0x82 0x36]", fourByte)
	}
}

func TestTextEncoder_Encode_UnmappableSubstitutesQuestionMark(t *testing.T) {
	// U+1F600 (an emoji) has no Windows-1252 representation; encode()
	// substitutes '?' for it and reports no error, unlike encodeInto.
	encoder, _ := NewTextEncoder("windows-1252")

	result, err := encoder.Encode("a\U0001F600b")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(result, []byte{'a', '?', 'b'}) {
		t.Errorf("Encode(a<emoji>b) = %v, expected [a ? b]", result)
	}
}

func TestTextEncoder_Encode_NilState(t *testing.T) {
	encoder := &TextEncoder{Encoding: "utf-8"}

	_, err := encoder.Encode("test")
	if err == nil {
		t.Error("Expected error when state is nil, got nil")
	}
}

func TestTextEncoder_EncodeInto(t *testing.T) {
	encoder, _ := NewTextEncoder("utf-8")

	dst := make([]byte, 4)
	read, written, err := encoder.EncodeInto("水A", dst)
	if err != nil {
		t.Fatalf("EncodeInto returned error: %v", err)
	}

	// "水" is 3 UTF-8 bytes / 1 UTF-16 unit, "A" is 1/1, so both fit in 4 bytes.
	if written != 4 {
		t.Errorf("written = %d, expected 4", written)
	}
	if read != 2 {
		t.Errorf("read = %d, expected 2", read)
	}
	if !bytes.Equal(dst, []byte{0xE6, 0xB0, 0xB4, 0x41}) {
		t.Errorf("dst = %v", dst)
	}
}

func TestTextEncoder_EncodeInto_Truncated(t *testing.T) {
	encoder, _ := NewTextEncoder("utf-8")

	dst := make([]byte, 2)
	read, written, err := encoder.EncodeInto("水A", dst)
	if err != nil {
		t.Fatalf("EncodeInto returned error: %v", err)
	}

	// "水" alone needs 3 bytes, which doesn't fit in a 2-byte destination,
	// so nothing is written and nothing is read.
	if written != 0 || read != 0 {
		t.Errorf("written=%d read=%d, expected 0/0", written, read)
	}
}

func TestTextEncoder_EncodeInto_UnsupportedEncoding(t *testing.T) {
	encoder, _ := NewTextEncoder("gb18030")

	_, _, err := encoder.EncodeInto("abc", make([]byte, 16))
	if err == nil {
		t.Error("expected an error for an encoding that does not support encodeInto")
	}
}

func BenchmarkTextEncoder_Encode_ASCII(b *testing.B) {
	encoder, _ := NewTextEncoder("utf-8")
	text := "Hello World"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := encoder.Encode(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTextEncoder_Encode_UTF8(b *testing.B) {
	encoder, _ := NewTextEncoder("utf-8")
	text := "Hello 世界! 🌟"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := encoder.Encode(text); err != nil {
			b.Fatal(err)
		}
	}
}
