package encoding

// decodeEUCKR implements spec.md §4.D.5.
func decodeEUCKR(work []byte, stream, fatal bool) decodeResult {
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
			if trail >= 0x41 && trail <= 0xFE {
				pointer := int(b-0x81)*190 + int(trail-0x41)
				if cp := eucKRDecode(pointer); cp != 0 {
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
