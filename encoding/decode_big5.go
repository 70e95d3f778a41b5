package encoding

// decodeBig5 implements spec.md §4.D.4.
func decodeBig5(work []byte, stream, fatal bool) decodeResult {
	out := make([]byte, 0, len(work)*4+1)
	pos := 0

	for pos < len(work) {
		b := work[pos]

		switch {
		case b <= 0x7F:
			out = append(out, b)
			pos++
		case b >= 0x81 && b <= 0xFE:
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
			if (trail >= 0x40 && trail <= 0x7E) || (trail >= 0xA1 && trail <= 0xFE) {
				trailOffset := trail - 0x40
				if trail >= 0xA1 {
					trailOffset = trail - 0x62
				}
				pointer := int(b-0x81)*157 + int(trailOffset)
				if cp := big5Decode(pointer); cp != 0 {
					out = appendUTF8(out, cp)
					pos += 2
					break
				}
			}

			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos += trailConsumeLength(trail)
		default:
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
		}
	}

	return decodeResult{text: out}
}
