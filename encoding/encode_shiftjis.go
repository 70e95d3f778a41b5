package encoding

// shiftJISPointerToBytes inverts decodeShiftJIS's pointer formula
// (spec.md §4.A/§4.D.3): row selects which of the two lead-byte bands
// applies, column which of the two trail-byte bands applies.
func shiftJISPointerToBytes(pointer int) (lead, trail byte) {
	row := pointer / 188
	col := pointer % 188

	if row < 31 {
		lead = byte(0x81 + row)
	} else {
		lead = byte(0xC1 + row)
	}
	if col < 63 {
		trail = byte(0x40 + col)
	} else {
		trail = byte(0x41 + col)
	}
	return lead, trail
}

// encodeShiftJIS implements spec.md §4.E.3. U+00A5 (Yen sign) and
// U+203E (overline) are the JIS X 0201 exceptions: they encode to 0x5C
// and 0x7E, the same bytes ASCII backslash and tilde pass through as
// (the decoder returns those bytes as backslash and tilde); half-width
// katakana is a single byte in 0xA1-0xDF.
func encodeShiftJIS(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	pos := 0
	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])
		pos += size

		switch {
		case cp == 0x00A5:
			out = append(out, 0x5C)
		case cp == 0x203E:
			out = append(out, 0x7E)
		case cp <= 0x7F:
			out = append(out, byte(cp))
		case cp == 0x0080:
			out = append(out, 0x80)
		case cp >= 0xFF61 && cp <= 0xFF9F:
			out = append(out, byte(0xA1+cp-0xFF61))
		default:
			pointer, ok := pointerEncode(jis0208EncodeTable, cp)
			if !ok {
				out = append(out, '?')
				continue
			}
			lead, trail := shiftJISPointerToBytes(pointer)
			out = append(out, lead, trail)
		}
	}
	return out, nil
}

// encodeShiftJISCodepoint is the per-codepoint form EncodeInto uses
// (spec.md §4.F), sharing the same exceptions table as encodeShiftJIS.
func encodeShiftJISCodepoint(dst []byte, cp Codepoint) ([]byte, bool) {
	switch {
	case cp == 0x00A5:
		return append(dst, 0x5C), true
	case cp == 0x203E:
		return append(dst, 0x7E), true
	case cp <= 0x7F:
		return append(dst, byte(cp)), true
	case cp == 0x0080:
		return append(dst, 0x80), true
	case cp >= 0xFF61 && cp <= 0xFF9F:
		return append(dst, byte(0xA1+cp-0xFF61)), true
	default:
		pointer, ok := pointerEncode(jis0208EncodeTable, cp)
		if !ok {
			return dst, false
		}
		lead, trail := shiftJISPointerToBytes(pointer)
		return append(dst, lead, trail), true
	}
}
