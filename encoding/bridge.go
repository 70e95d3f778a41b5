package encoding

import "fmt"

// BridgeErrorCode enumerates the failure modes of the UTF bridge
// (spec.md §4.B): the hot-path codepoint-level converter that sits
// between the byte-oriented legacy codecs and the host's string type.
//
// Grounded in original_source/src/lib/utf-conv/utf-conv.c, which
// reports the same taxonomy (by name) alongside a byte offset.
type BridgeErrorCode int

const (
	// ErrUnexpectedContinuation: a continuation byte (0x80-0xBF)
	// appeared where a lead byte was expected, or a byte outside
	// 0x80-0xBF appeared where a continuation byte was expected.
	ErrUnexpectedContinuation BridgeErrorCode = iota
	// ErrInvalidLead: a byte in 0xC0-0xC1 or 0xF5-0xFF, which can
	// never start a well-formed UTF-8 sequence.
	ErrInvalidLead
	// ErrTruncatedSequence: a multi-byte sequence was cut short by
	// the end of the buffer.
	ErrTruncatedSequence
	// ErrOverlong: the decoded codepoint could have been encoded in
	// fewer bytes.
	ErrOverlong
	// ErrSurrogateInUTF8: a lead byte in the 3-byte range decoded to
	// a surrogate codepoint (U+D800..U+DFFF), which UTF-8 must never
	// encode directly.
	ErrSurrogateInUTF8
	// ErrCodepointOutOfRange: the decoded value exceeds U+10FFFF.
	ErrCodepointOutOfRange
	// ErrTruncatedPair: a high surrogate is the last code unit of a
	// UTF-16 buffer, with no unit after it to pair with.
	ErrTruncatedPair
	// ErrMissingLowSurrogate: a high surrogate was not followed by a
	// low surrogate.
	ErrMissingLowSurrogate
	// ErrUnexpectedLowSurrogate: a low surrogate appeared without a
	// preceding high surrogate.
	ErrUnexpectedLowSurrogate
)

func (c BridgeErrorCode) String() string {
	switch c {
	case ErrUnexpectedContinuation:
		return "unexpected continuation byte"
	case ErrInvalidLead:
		return "invalid lead byte"
	case ErrTruncatedSequence:
		return "truncated sequence"
	case ErrOverlong:
		return "overlong encoding"
	case ErrSurrogateInUTF8:
		return "surrogate encoded in UTF-8"
	case ErrCodepointOutOfRange:
		return "codepoint out of range"
	case ErrTruncatedPair:
		return "truncated surrogate pair"
	case ErrMissingLowSurrogate:
		return "high surrogate without low surrogate"
	case ErrUnexpectedLowSurrogate:
		return "unexpected low surrogate"
	default:
		return "unknown bridge error"
	}
}

// BridgeError reports a UTF bridge failure with a zero-based byte
// offset: for UTF-8 input, the byte at which the error was detected
// (the lead byte, or the bad continuation byte inside a sequence); for
// UTF-16 input, the first byte of the offending code unit.
type BridgeError struct {
	Code   BridgeErrorCode
	Offset int
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("utf bridge: %s at byte offset %d", e.Code, e.Offset)
}

// utf8SequenceLength returns the number of bytes a well-formed UTF-8
// sequence starting with lead should occupy, or 0 if lead can never
// start a sequence.
func utf8SequenceLength(lead byte) int {
	switch {
	case lead <= 0x7F:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	default:
		return 0
	}
}

// UTF8ToUTF16 performs the strict half of the UTF bridge: a two-pass
// conversion from a UTF-8 byte buffer to UTF-16 code units, rejecting
// surrogates, overlong sequences, and out-of-range codepoints.
//
// This mirrors utf-conv.c's utf8_to_utf16: a counting pass followed by
// a fill pass, rather than an append-growing slice, so callers that
// already know the destination size (e.g. a fixed host buffer) can
// preallocate exactly.
func UTF8ToUTF16(src []byte) ([]uint16, error) {
	unitCount, err := countUTF16Units(src)
	if err != nil {
		return nil, err
	}

	units := make([]uint16, 0, unitCount)
	pos := 0
	for pos < len(src) {
		cp, size, err := decodeUTF8Strict(src[pos:])
		if err != nil {
			err.Offset += pos
			return nil, err
		}
		if cp <= 0xFFFF {
			units = append(units, uint16(cp))
		} else {
			cp -= 0x10000
			units = append(units, uint16(0xD800+(cp>>10)), uint16(0xDC00+(cp&0x3FF)))
		}
		pos += size
	}
	return units, nil
}

func countUTF16Units(src []byte) (int, error) {
	count := 0
	pos := 0
	for pos < len(src) {
		cp, size, err := decodeUTF8Strict(src[pos:])
		if err != nil {
			err.Offset += pos
			return 0, err
		}
		if cp > 0xFFFF {
			count += 2
		} else {
			count++
		}
		pos += size
	}
	return count, nil
}

// decodeUTF8Strict decodes a single UTF-8 scalar value at the start of
// b, rejecting anything the WHATWG UTF-8 decoder would also reject:
// overlong forms, encoded surrogates, and codepoints above U+10FFFF.
func decodeUTF8Strict(b []byte) (Codepoint, int, *BridgeError) {
	if len(b) == 0 {
		return 0, 0, &BridgeError{Code: ErrTruncatedSequence}
	}

	lead := b[0]
	size := utf8SequenceLength(lead)
	switch {
	case size == 1:
		return Codepoint(lead), 1, nil
	case size == 0:
		if lead >= 0x80 && lead <= 0xBF {
			return 0, 0, &BridgeError{Code: ErrUnexpectedContinuation}
		}
		return 0, 0, &BridgeError{Code: ErrInvalidLead}
	}

	if len(b) < size {
		return 0, 0, &BridgeError{Code: ErrTruncatedSequence}
	}

	cp := uint32(lead) & (0xFF >> uint(size+1))
	for i := 1; i < size; i++ {
		c := b[i]
		if c < 0x80 || c > 0xBF {
			return 0, 0, &BridgeError{Code: ErrUnexpectedContinuation, Offset: i}
		}
		cp = (cp << 6) | uint32(c&0x3F)
	}

	minima := [5]uint32{0, 0, 0x80, 0x800, 0x10000}
	if cp < minima[size] {
		return 0, 0, &BridgeError{Code: ErrOverlong}
	}
	if isSurrogate(cp) {
		return 0, 0, &BridgeError{Code: ErrSurrogateInUTF8}
	}
	if cp > maxScalar {
		return 0, 0, &BridgeError{Code: ErrCodepointOutOfRange}
	}

	return Codepoint(cp), size, nil
}

// UTF16ToUTF8 performs the reverse bridge direction: UTF-16 code units
// to a UTF-8 byte buffer, validating surrogate pairing.
func UTF16ToUTF8(units []uint16) ([]byte, error) {
	out := make([]byte, 0, len(units)*3)
	i := 0
	for i < len(units) {
		u := units[i]
		switch {
		case isHighSurrogate(u):
			if i+1 >= len(units) {
				return nil, &BridgeError{Code: ErrTruncatedPair, Offset: i * 2}
			}
			lo := units[i+1]
			if !isLowSurrogate(lo) {
				return nil, &BridgeError{Code: ErrMissingLowSurrogate, Offset: i * 2}
			}
			cp := 0x10000 + (Codepoint(u)-0xD800)<<10 + (Codepoint(lo) - 0xDC00)
			out = appendUTF8(out, cp)
			i += 2
		case isLowSurrogate(u):
			return nil, &BridgeError{Code: ErrUnexpectedLowSurrogate, Offset: i * 2}
		default:
			out = appendUTF8(out, Codepoint(u))
			i++
		}
	}
	return out, nil
}

// decodeUTF8Permissive is the permissive half of the UTF bridge: it
// walks host text one scalar at a time the way the encoder core's
// input loop does, but — unlike decodeUTF8Strict — it recognizes the
// WTF-8 (CESU-8-style) encoding of a lone surrogate, 0xED with a
// second byte in 0xA0-0xBF, and returns the surrogate codepoint
// verbatim instead of rejecting it.
//
// This matters because goja's JS string values may round-trip
// ill-formed UTF-16 (an unpaired surrogate from e.g. `"\uD800"`) into
// a Go string using this WTF-8-style byte pattern. The UTF-16 encoder
// needs to see that surrogate as itself, not as a decode error,
// because spec.md §4.E requires it to be re-emitted as an unpaired
// 16-bit code unit rather than replaced.
func decodeUTF8Permissive(b []byte) (Codepoint, int) {
	if len(b) == 0 {
		return 0, 0
	}

	if b[0] == 0xED && len(b) >= 3 && b[1] >= 0xA0 && b[1] <= 0xBF &&
		b[2] >= 0x80 && b[2] <= 0xBF {
		cp := (uint32(b[0]&0x0F) << 12) | (uint32(b[1]&0x3F) << 6) | uint32(b[2]&0x3F)
		return Codepoint(cp), 3
	}

	cp, size, err := decodeUTF8Strict(b)
	if err != nil {
		return Replacement, 1
	}
	return cp, size
}

// codepointUTF16Width reports how many UTF-16 code units cp would
// occupy: 1 for the BMP (including lone surrogates), 2 for
// supplementary-plane scalars. encodeInto uses this to report `read`
// in UTF-16 code units even though the host text it walks is UTF-8.
func codepointUTF16Width(cp Codepoint) int {
	if cp > 0xFFFF {
		return 2
	}
	return 1
}
