package encoding

// decodeShiftJIS implements spec.md §4.D.3, grounded in
// quickjs-encoding.c's decode_shiftjis_bytes and libshiftjis.c's
// shiftjis_decode pointer arithmetic.
func decodeShiftJIS(work []byte, stream, fatal bool) decodeResult {
	out := make([]byte, 0, len(work)*4+1)
	pos := 0

	for pos < len(work) {
		b := work[pos]

		switch {
		case b <= 0x7F:
			out = append(out, b)
			pos++
			continue
		case b == 0x80:
			out = appendUTF8(out, 0x80)
			pos++
			continue
		case b >= 0xA1 && b <= 0xDF:
			out = appendUTF8(out, 0xFF61+Codepoint(b)-0xA1)
			pos++
			continue
		case (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC):
			if pos+1 >= len(work) {
				if stream {
					return decodeResult{text: out, pending: []byte{b}}
				}
				if fatal {
					return decodeResult{err: errDecodeMalformed}
				}
				out = appendReplacement(out)
				pos++
				break
			}

			trail := work[pos+1]
			if (trail >= 0x40 && trail <= 0x7E) || (trail >= 0x80 && trail <= 0xFC) {
				leadOffset := byte(0x81)
				if b >= 0xA0 {
					leadOffset = 0xC1
				}
				trailOffset := byte(0x40)
				if trail >= 0x7F {
					trailOffset = 0x41
				}
				pointer := int(b-leadOffset)*188 + int(trail-trailOffset)

				if pointer >= 8836 && pointer <= 10715 {
					out = appendUTF8(out, Codepoint(0xE000+pointer-8836))
					pos += 2
					continue
				}

				if cp := jis0208Decode(pointer); cp != 0 {
					out = appendUTF8(out, cp)
					pos += 2
					continue
				}
			}

			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos += trailConsumeLength(trail)
			continue
		default:
			// 0xA0, 0xFD-0xFF: invalid.
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
		}
	}

	return decodeResult{text: out}
}
