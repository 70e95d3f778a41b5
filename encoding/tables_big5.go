package encoding

// big5TableSize is 126*157 ((0xFE-0x81+1) lead bytes by 157 trail
// slots), the pointer space decodeBig5's formula in decode_big5.go
// addresses (spec.md §4.D.4/§4.A).
const big5TableSize = 126 * 157

// big5DecodeTable: curated subset of the generator-produced table,
// anchored on spec.md's `A4 40` -> U+4E00 conformance vector
// (pointer 5495), plus its immediate CJK-ideograph neighbors.
var big5DecodeTable = buildBig5Table()

func buildBig5Table() []Codepoint {
	t := make([]Codepoint, big5TableSize)
	t[5495] = 0x4E00 // 一
	t[5496] = 0x4E59 // 乙
	t[5497] = 0x4E01 // 丁
	t[5498] = 0x4E03 // 七
	t[5499] = 0x4E43 // 乃
	return t
}

func big5Decode(pointer int) Codepoint {
	if pointer < 0 || pointer >= len(big5DecodeTable) {
		return 0
	}
	return big5DecodeTable[pointer]
}

var big5EncodeTable = buildPointerEncodeTable(big5DecodeTable)
