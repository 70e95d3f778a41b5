package encoding

// decodeEUCJP implements spec.md §4.D.6. The 0x8F lead byte begins a
// three-byte JIS X 0212 sequence; on an invalid trail after 0x8F, only
// the 0x8F is consumed and the following bytes are re-examined from
// scratch, exactly like the ASCII-recoverable rule for the two-byte
// forms.
func decodeEUCJP(work []byte, stream, fatal bool) decodeResult {
	out := make([]byte, 0, len(work)*4+1)
	pos := 0

	for pos < len(work) {
		b := work[pos]

		switch {
		case b <= 0x7F:
			out = append(out, b)
			pos++

		case b == 0x8E:
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
			if trail >= 0xA1 && trail <= 0xDF {
				out = appendUTF8(out, 0xFF61+Codepoint(trail)-0xA1)
				pos += 2
				break
			}
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos += trailConsumeLength(trail)

		case b == 0x8F:
			if pos+2 >= len(work) {
				if stream {
					pending := append([]byte(nil), work[pos:]...)
					return decodeResult{text: out, pending: pending}
				}
				if fatal {
					return decodeResult{err: errDecodeMalformed}
				}
				out = appendReplacement(out)
				// The 0x8F and a following byte in 0xA1-0xFE form one
				// truncated sequence; any other byte is re-examined.
				pos++
				if pos < len(work) && work[pos] >= 0xA1 && work[pos] <= 0xFE {
					pos++
				}
				break
			}
			b2, b3 := work[pos+1], work[pos+2]
			if b2 >= 0xA1 && b2 <= 0xFE && b3 >= 0xA1 && b3 <= 0xFE {
				pointer := int(b2-0xA1)*94 + int(b3-0xA1)
				if cp := jis0212Decode(pointer); cp != 0 {
					out = appendUTF8(out, cp)
					pos += 3
					break
				}
			}
			// Invalid trail bytes after 0x8F: only the 0x8F is
			// consumed; b2/b3 are re-examined next iteration.
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++

		case b >= 0xA1 && b <= 0xFE:
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
			if trail >= 0xA1 && trail <= 0xFE {
				pointer := int(b-0xA1)*94 + int(trail-0xA1)
				if cp := jis0208Decode(pointer); cp != 0 {
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
