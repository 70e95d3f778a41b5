package encoding

// encodeUTF16Codepoint appends cp to dst as one or two 16-bit code
// units in the given byte order (spec.md §4.E.2). A supplementary
// codepoint is split into a surrogate pair; a lone surrogate that
// decodeUTF8Permissive handed back verbatim is re-emitted as itself,
// the UTF-16 encoder's one exception to "every codepoint I see is a
// scalar value".
func encodeUTF16Codepoint(dst []byte, cp Codepoint, bigEndian bool) []byte {
	if cp <= 0xFFFF {
		return appendUTF16Unit(dst, uint16(cp), bigEndian)
	}
	cp -= 0x10000
	hi := uint16(0xD800 + (cp >> 10))
	lo := uint16(0xDC00 + (cp & 0x3FF))
	dst = appendUTF16Unit(dst, hi, bigEndian)
	return appendUTF16Unit(dst, lo, bigEndian)
}

func appendUTF16Unit(dst []byte, u uint16, bigEndian bool) []byte {
	if bigEndian {
		return append(dst, byte(u>>8), byte(u))
	}
	return append(dst, byte(u), byte(u>>8))
}

func encodeUTF16(src []byte, bigEndian bool) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)
	pos := 0
	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])
		out = encodeUTF16Codepoint(out, cp, bigEndian)
		pos += size
	}
	return out, nil
}
