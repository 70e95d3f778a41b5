package encoding

// encodeEUCJP implements spec.md §4.E.6: half-width katakana goes out
// as the 0x8E-prefixed two-byte form, everything else is looked up
// first in JIS0208 and, failing that, JIS0212 under the 0x8F prefix.
func encodeEUCJP(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	pos := 0
	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])
		pos += size

		switch {
		case cp <= 0x7F:
			out = append(out, byte(cp))
		case cp >= 0xFF61 && cp <= 0xFF9F:
			out = append(out, 0x8E, byte(0xA1+cp-0xFF61))
		default:
			if pointer, ok := pointerEncode(jis0208EncodeTable, cp); ok {
				out = append(out, byte(0xA1+pointer/94), byte(0xA1+pointer%94))
				continue
			}
			if pointer, ok := pointerEncode(jis0212EncodeTable, cp); ok {
				out = append(out, 0x8F, byte(0xA1+pointer/94), byte(0xA1+pointer%94))
				continue
			}
			out = append(out, '?')
		}
	}
	return out, nil
}
