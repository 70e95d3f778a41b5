package encoding

// decodeGB18030 implements spec.md §4.D.7, grounded in
// quickjs-encoding.c's gb18030 decode loop and libgb18030.c's
// gb18030_decode_twobyte/gb18030_decode_fourbyte. The second byte
// after a lead byte decides the shape: 0x30-0x39 commits to a
// four-byte sequence, anything else to a two-byte one.
func decodeGB18030(work []byte, stream, fatal bool) decodeResult {
	out := make([]byte, 0, len(work)*4+1)
	pos := 0

	for pos < len(work) {
		lead := work[pos]

		if lead <= 0x7F {
			out = append(out, lead)
			pos++
			continue
		}

		if lead < 0x81 || lead > 0xFE {
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			continue
		}

		if pos+1 >= len(work) {
			if stream {
				return decodeResult{text: out, pending: []byte{lead}}
			}
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			continue
		}

		b2 := work[pos+1]

		if b2 >= 0x30 && b2 <= 0x39 {
			if pos+3 >= len(work) {
				if stream {
					pending := append([]byte(nil), work[pos:]...)
					return decodeResult{text: out, pending: pending}
				}
				if fatal {
					return decodeResult{err: errDecodeMalformed}
				}
				out = appendReplacement(out)
				pos = len(work)
				continue
			}

			b3, b4 := work[pos+2], work[pos+3]
			if b3 >= 0x81 && b3 <= 0xFE && b4 >= 0x30 && b4 <= 0x39 {
				pointer := (int(lead-0x81)*10+int(b2-0x30))*1260 + int(b3-0x81)*10 + int(b4-0x30)
				if cp, ok := gb18030Decode4Byte(pointer); ok {
					out = appendUTF8(out, cp)
					pos += 4
					continue
				}
			}

			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			continue
		}

		if (b2 >= 0x40 && b2 <= 0x7E) || (b2 >= 0x80 && b2 <= 0xFE) {
			offset := byte(0x40)
			if b2 >= 0x7F {
				offset = 0x41
			}
			pointer := int(lead-0x81)*190 + int(b2-offset)
			if cp := gb18030Decode2Byte(pointer); cp != 0 {
				out = appendUTF8(out, cp)
				pos += 2
				continue
			}
		}

		if fatal {
			return decodeResult{err: errDecodeMalformed}
		}
		out = appendReplacement(out)
		pos += trailConsumeLength(b2)
	}

	return decodeResult{text: out}
}
