package encoding

func gb18030TwoBytePointerToBytes(pointer int) (lead, b2 byte) {
	row := pointer / 190
	col := pointer % 190
	lead = byte(0x81 + row)
	if col < 63 {
		b2 = byte(0x40 + col)
	} else {
		b2 = byte(0x41 + col)
	}
	return lead, b2
}

func gb18030FourBytePointerToBytes(pointer int) (b1, b2, b3, b4 byte) {
	outer := pointer / 1260
	inner := pointer % 1260
	b1 = byte(0x81 + outer/10)
	b2 = byte(0x30 + outer%10)
	b3 = byte(0x81 + inner/10)
	b4 = byte(0x30 + inner%10)
	return
}

// encodeGB18030 implements spec.md §4.E.7: try the two-byte table
// first (it covers the common CJK repertoire), then fall back to the
// four-byte ranges, which by construction cover every remaining
// Unicode scalar value.
func encodeGB18030(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	pos := 0
	for pos < len(src) {
		cp, size := decodeUTF8Permissive(src[pos:])
		pos += size

		if cp <= 0x7F {
			out = append(out, byte(cp))
			continue
		}
		if pointer, ok := pointerEncode(gb18030EncodeTable, cp); ok {
			lead, b2 := gb18030TwoBytePointerToBytes(pointer)
			out = append(out, lead, b2)
			continue
		}
		pointer, ok := gb18030RangePointer(cp)
		if !ok {
			out = append(out, '?')
			continue
		}
		b1, b2, b3, b4 := gb18030FourBytePointerToBytes(pointer)
		out = append(out, b1, b2, b3, b4)
	}
	return out, nil
}
