package encoding

// decodeUTF8 implements spec.md §4.D.1. It differs from the strict
// bridge decoder (decodeUTF8Strict in bridge.go) in exactly the way
// the WHATWG algorithm requires: on any violation it advances the
// cursor by a single byte rather than by the nominal sequence length,
// so a bad lead byte doesn't swallow otherwise-valid bytes after it.
func decodeUTF8(work []byte, stream, fatal bool) decodeResult {
	out := make([]byte, 0, len(work)*4+1)
	pos := 0

	for pos < len(work) {
		lead := work[pos]
		size := utf8SequenceLength(lead)

		if size == 1 {
			out = append(out, lead)
			pos++
			continue
		}
		if size == 0 {
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			continue
		}

		if pos+size > len(work) {
			// Incomplete sequence at the end of the buffer. In a final
			// call the lead and the continuation bytes after it count
			// as one error; a following non-continuation byte is
			// decoded on its own.
			if stream {
				pending := append([]byte(nil), work[pos:]...)
				return decodeResult{text: out, pending: pending}
			}
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			for pos < len(work) && work[pos] >= 0x80 && work[pos] <= 0xBF {
				pos++
			}
			continue
		}

		cp := uint32(lead) & (0xFF >> uint(size+1))
		valid := true
		for i := 1; i < size; i++ {
			c := work[pos+i]
			if c < 0x80 || c > 0xBF {
				valid = false
				break
			}
			cp = (cp << 6) | uint32(c&0x3F)
		}

		minima := [5]uint32{0, 0, 0x80, 0x800, 0x10000}
		if valid && (cp < minima[size] || isSurrogate(cp) || cp > maxScalar) {
			valid = false
		}

		if !valid {
			if fatal {
				return decodeResult{err: errDecodeMalformed}
			}
			out = appendReplacement(out)
			pos++
			continue
		}

		out = appendUTF8(out, Codepoint(cp))
		pos += size
	}

	return decodeResult{text: out}
}
