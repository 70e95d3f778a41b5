package encoding

// decodeUTF16 implements spec.md §4.D.2 for both endiannesses. BOM
// handling already happened in the shared shell (decoder.go); this
// function only ever sees the payload.
func decodeUTF16(work []byte, stream, fatal, bigEndian bool) decodeResult {
	out := make([]byte, 0, len(work)*2+1)
	pos := 0

	readUnit := func(i int) uint16 {
		if bigEndian {
			return uint16(work[i])<<8 | uint16(work[i+1])
		}
		return uint16(work[i]) | uint16(work[i+1])<<8
	}

	for pos < len(work) {
		if pos+2 > len(work) {
			// Odd trailing byte.
			if stream {
				pending := append([]byte(nil), work[pos:]...)
				return decodeResult{text: out, pending: pending}
			}
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			break
		}

		cu := readUnit(pos)
		pos += 2

		switch {
		case isHighSurrogate(cu):
			if pos+2 > len(work) {
				if stream {
					pending := append([]byte(nil), work[pos-2:]...)
					return decodeResult{text: out, pending: pending}
				}
				if fatal {
					return decodeResult{err: errDecodeMalformed}
				}
				out = appendReplacement(out)
				if pos < len(work) {
					// One more dangling byte: also an error.
					out = appendReplacement(out)
				}
				pos = len(work)
			} else {
				cu2 := readUnit(pos)
				if isLowSurrogate(cu2) {
					cp := 0x10000 + (Codepoint(cu)-0xD800)<<10 + (Codepoint(cu2) - 0xDC00)
					out = appendUTF8(out, cp)
					pos += 2
				} else {
					if fatal {
						return decodeResult{err: errDecodeMalformed}
					}
					out = appendReplacement(out)
					// cu2 is not consumed; re-examined next iteration.
				}
			}
		case isLowSurrogate(cu):
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
		default:
			out = appendUTF8(out, Codepoint(cu))
		}
	}

	return decodeResult{text: out}
}
