package encoding

// encodeSingleByte implements spec.md §4.E.4 for the two Windows code
// pages: ASCII passes through unchanged, everything else is a binary
// search over the encoding's sorted (codepoint, byte) table.
func encodeSingleByte(src []byte, table []singleByteEncodeEntry) ([]byte, error) {
	out := make([]byte, 0, len(src))
	pos := 0
	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])
		pos += size

		if cp <= 0x7F {
			out = append(out, byte(cp))
			continue
		}
		b, ok := singleByteEncode(table, cp)
		if !ok {
			out = append(out, '?')
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
