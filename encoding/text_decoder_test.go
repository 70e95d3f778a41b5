package encoding

import (
	"testing"
)

func newDecoderForTest(t *testing.T, label string, opts textDecoderOptions) *TextDecoder {
	t.Helper()
	td, err := NewTextDecoder(nil, label, opts)
	if err != nil {
		t.Fatalf("NewTextDecoder(%q) returned error: %v", label, err)
	}
	return td
}

func TestNewTextDecoder_DefaultsToUTF8(t *testing.T) {
	td := newDecoderForTest(t, "", textDecoderOptions{})
	if td.Encoding != "utf-8" {
		t.Errorf("Encoding = %q, expected utf-8", td.Encoding)
	}
}

func TestNewTextDecoder_UnknownLabel(t *testing.T) {
	_, err := NewTextDecoder(nil, "iso-2022-cn", textDecoderOptions{})
	if err == nil {
		t.Fatal("expected an error for an unrecognized label")
	}
}

func TestNewTextDecoder_LabelAliasesResolveToCanonicalName(t *testing.T) {
	testCases := []struct {
		label     string
		canonical string
	}{
		{"utf8", "utf-8"},
		{"UTF-8", "utf-8"},
		{" sjis ", "shift_jis"},
		{"x-sjis", "shift_jis"},
		{"cp1252", "windows-1252"},
		{"gbk", "gb18030"},
		{"ks_c_5601-1987", "euc-kr"},
	}

	for _, tc := range testCases {
		td := newDecoderForTest(t, tc.label, textDecoderOptions{})
		if td.Encoding != tc.canonical {
			t.Errorf("label %q: Encoding = %q, expected %q", tc.label, td.Encoding, tc.canonical)
		}
	}
}

func TestTextDecoder_Decode_ASCIIIdentity(t *testing.T) {
	for _, label := range []string{"utf-8", "windows-1252", "windows-1251", "shift_jis", "big5", "euc-kr", "euc-jp", "gb18030"} {
		td := newDecoderForTest(t, label, textDecoderOptions{})
		got, err := td.Decode([]byte("Hello, world!"), decodeOptions{})
		if err != nil {
			t.Errorf("%s: Decode returned error: %v", label, err)
			continue
		}
		if got != "Hello, world!" {
			t.Errorf("%s: Decode = %q", label, got)
		}
	}
}

func TestTextDecoder_Decode_UTF8BOMStripped(t *testing.T) {
	td := newDecoderForTest(t, "utf-8", textDecoderOptions{})
	got, err := td.Decode([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "hi" {
		t.Errorf("Decode = %q, expected %q", got, "hi")
	}
}

func TestTextDecoder_Decode_UTF8BOMKeptWhenIgnoreBOM(t *testing.T) {
	td := newDecoderForTest(t, "utf-8", textDecoderOptions{IgnoreBOM: true})
	got, err := td.Decode([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "\xEF\xBB\xBFhi" {
		t.Errorf("Decode = %q, expected BOM preserved", got)
	}
}

func TestTextDecoder_Decode_UTF8Malformed_Replacement(t *testing.T) {
	td := newDecoderForTest(t, "utf-8", textDecoderOptions{})
	got, err := td.Decode([]byte{'a', 0xFF, 'b'}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "a�b" {
		t.Errorf("Decode = %q, expected replacement character", got)
	}
}

func TestTextDecoder_Decode_UTF8Malformed_Fatal(t *testing.T) {
	td := newDecoderForTest(t, "utf-8", textDecoderOptions{Fatal: true})
	_, err := td.Decode([]byte{'a', 0xFF, 'b'}, decodeOptions{})
	if err == nil {
		t.Fatal("expected a fatal decode error")
	}
}

func TestTextDecoder_Decode_UTF16LE(t *testing.T) {
	td := newDecoderForTest(t, "utf-16le", textDecoderOptions{})
	got, err := td.Decode([]byte{0x41, 0x00, 0x34, 0x6C}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "A水" {
		t.Errorf("Decode = %q, expected A水", got)
	}
}

func TestTextDecoder_Decode_UTF16BE_SurrogatePair(t *testing.T) {
	td := newDecoderForTest(t, "utf-16be", textDecoderOptions{})
	// U+1D11E MUSICAL SYMBOL G CLEF as a UTF-16BE surrogate pair.
	got, err := td.Decode([]byte{0xD8, 0x34, 0xDD, 0x1E}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "\U0001D11E" {
		t.Errorf("Decode = %q, expected G clef", got)
	}
}

func TestTextDecoder_Decode_Streaming_SplitMultiByteSequence(t *testing.T) {
	td := newDecoderForTest(t, "utf-8", textDecoderOptions{})

	// "水" = 0xE6 0xB0 0xB4, split across three decode() calls.
	part1, err := td.Decode([]byte{0xE6}, decodeOptions{Stream: true})
	if err != nil {
		t.Fatalf("Decode (part 1) returned error: %v", err)
	}
	if part1 != "" {
		t.Errorf("part1 = %q, expected empty (incomplete sequence pending)", part1)
	}

	part2, err := td.Decode([]byte{0xB0}, decodeOptions{Stream: true})
	if err != nil {
		t.Fatalf("Decode (part 2) returned error: %v", err)
	}
	if part2 != "" {
		t.Errorf("part2 = %q, expected empty (still incomplete)", part2)
	}

	part3, err := td.Decode([]byte{0xB4}, decodeOptions{Stream: false})
	if err != nil {
		t.Fatalf("Decode (part 3) returned error: %v", err)
	}
	if part3 != "水" {
		t.Errorf("part3 = %q, expected 水", part3)
	}
}

func TestTextDecoder_Decode_ShiftJIS(t *testing.T) {
	td := newDecoderForTest(t, "shift_jis", textDecoderOptions{})

	got, err := td.Decode([]byte{0x82, 0xA0}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "あ" {
		t.Errorf("Decode([0x82 0xA0]) = %q, expected あ (U+3042)", got)
	}

	space, err := td.Decode([]byte{0x81, 0x40}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if space != "　" {
		t.Errorf("Decode([0x81 0x40]) = %q, expected U+3000", space)
	}
}

func TestTextDecoder_Decode_GB18030(t *testing.T) {
	td := newDecoderForTest(t, "gb18030", textDecoderOptions{})

	twoByte, err := td.Decode([]byte{0x81, 0x40}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if twoByte != "丂" {
		t.Errorf("Decode([0x81 0x40]) = %q, expected U+4E02", twoByte)
	}

	euro, err := td.Decode([]byte{0xA2, 0xE3}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if euro != "€" {
		t.Errorf("Decode([0xA2 0xE3]) = %q, expected Euro sign", euro)
	}

	fourByte, err := td.Decode([]byte{0x95, 0x32, 0x82, 0x36}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if fourByte != "\U0001F4A9" {
		t.Errorf("Decode(four-byte sequence) = %q, expected U+1F4A9", fourByte)
	}
}

func TestTextDecoder_Decode_EUCJP_JIS0212(t *testing.T) {
	td := newDecoderForTest(t, "euc-jp", textDecoderOptions{})

	got, err := td.Decode([]byte{0x8F, 0xA2, 0xAF}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "˘" {
		t.Errorf("Decode([0x8F 0xA2 0xAF]) = %q, expected U+02D8", got)
	}
}

func TestTextDecoder_Decode_Big5(t *testing.T) {
	td := newDecoderForTest(t, "big5", textDecoderOptions{})

	got, err := td.Decode([]byte{0xA4, 0x40}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "一" {
		t.Errorf("Decode([0xA4 0x40]) = %q, expected U+4E00", got)
	}
}

func TestTextDecoder_Decode_EUCKR(t *testing.T) {
	td := newDecoderForTest(t, "euc-kr", textDecoderOptions{})

	got, err := td.Decode([]byte{0xB0, 0xA1}, decodeOptions{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "가" {
		t.Errorf("Decode([0xB0 0xA1]) = %q, expected U+AC00", got)
	}
}

func TestTextDecoder_Decode_NilState(t *testing.T) {
	td := &TextDecoder{Encoding: "utf-8"}
	_, err := td.Decode([]byte("x"), decodeOptions{})
	if err == nil {
		t.Fatal("expected an error when state is nil")
	}
}

func TestTextDecoder_Decode_RoundTripsWithEncoder(t *testing.T) {
	labels := []string{"utf-8", "utf-16le", "utf-16be", "shift_jis", "gb18030", "euc-kr", "euc-jp", "big5", "windows-1252", "windows-1251"}
	text := "Hello"

	for _, label := range labels {
		enc, err := NewTextEncoder(label)
		if err != nil {
			t.Fatalf("%s: NewTextEncoder returned error: %v", label, err)
		}
		encoded, err := enc.Encode(text)
		if err != nil {
			t.Fatalf("%s: Encode returned error: %v", label, err)
		}

		dec := newDecoderForTest(t, label, textDecoderOptions{})
		decoded, err := dec.Decode(encoded, decodeOptions{})
		if err != nil {
			t.Fatalf("%s: Decode returned error: %v", label, err)
		}
		if decoded != text {
			t.Errorf("%s: round trip = %q, expected %q", label, decoded, text)
		}
	}
}
