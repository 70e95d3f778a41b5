package encoding

// EncoderState is the per-instance state of spec.md §3's encoder side.
// Unlike DecoderState it carries no cross-call buffering: both Encode
// and EncodeInto always see the whole source string in one call, the
// same assumption the WHATWG TextEncoder interface itself makes.
type EncoderState struct {
	encoding EncodingID
}

func newEncoderState(id EncodingID) *EncoderState {
	return &EncoderState{encoding: id}
}

// Encode runs spec.md §4.E over the whole of text and returns the
// encoded bytes.
func (s *EncoderState) Encode(text string) ([]byte, error) {
	return encodeChunk(s.encoding, []byte(text))
}

func encodeChunk(id EncodingID, src []byte) ([]byte, error) {
	switch id {
	case UTF8:
		return encodeUTF8(src)
	case UTF16LE:
		return encodeUTF16(src, false)
	case UTF16BE:
		return encodeUTF16(src, true)
	case ShiftJIS:
		return encodeShiftJIS(src)
	case Windows1252:
		return encodeSingleByte(src, windows1252Encode)
	case Windows1251:
		return encodeSingleByte(src, windows1251Encode)
	case Big5:
		return encodeBig5(src)
	case EUCKR:
		return encodeEUCKR(src)
	case EUCJP:
		return encodeEUCJP(src)
	case GB18030:
		return encodeGB18030(src)
	default:
		return nil, NewError(TypeError, "unsupported encoding")
	}
}

// codepointEncoder appends cp's encoded bytes to dst, reporting false
// if cp is unmappable in the target encoding.
type codepointEncoder func(dst []byte, cp Codepoint) ([]byte, bool)

func codepointEncoderFor(id EncodingID) (codepointEncoder, bool) {
	switch id {
	case UTF8:
		return func(dst []byte, cp Codepoint) ([]byte, bool) {
			return encodeUTF8Codepoint(dst, cp), true
		}, true
	case UTF16LE:
		return func(dst []byte, cp Codepoint) ([]byte, bool) {
			return encodeUTF16Codepoint(dst, cp, false), true
		}, true
	case UTF16BE:
		return func(dst []byte, cp Codepoint) ([]byte, bool) {
			return encodeUTF16Codepoint(dst, cp, true), true
		}, true
	case ShiftJIS:
		return encodeShiftJISCodepoint, true
	default:
		return nil, false
	}
}

// EncodeInto implements spec.md §4.F's encodeInto: it writes as many
// whole codepoints from text into dst as fit, never a partial
// codepoint's bytes, and reports read (in UTF-16 code units, matching
// the JS-visible string length) and written (in bytes). Per spec.md §9
// Open Question 1, this is only implemented for the subset
// supportsEncodeInto names; other encodings return a TypeError.
func (s *EncoderState) EncodeInto(text string, dst []byte) (read, written int, err error) {
	enc, ok := codepointEncoderFor(s.encoding)
	if !ok {
		return 0, 0, NewError(TypeError, "encodeInto is not supported for this encoding")
	}

	src := []byte(text)
	pos := 0
	var buf [4]byte

	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])

		appended, mapped := enc(buf[:0], cp)
		if !mapped {
			break
		}
		if written+len(appended) > len(dst) {
			break
		}

		copy(dst[written:], appended)
		written += len(appended)
		read += codepointUTF16Width(cp)
		pos += size
	}

	return read, written, nil
}
