package encoding

// windows1252Decode is the full 128-entry high-byte table of
// spec.md §4.A for Windows-1252 (byte - 0x80 = index). A zero entry
// is unmapped (the C1 control slots WHATWG leaves undefined: 0x81,
// 0x8D, 0x8F, 0x90, 0x9D).
//
// Grounded in the WHATWG index-windows-1252.txt values; structurally
// identical in shape to golang-text/encoding/charmap's generated
// tables (see other_examples' maketables.go), but hand-populated here
// since this table is small and stable enough not to need the
// generator pipeline the CJK tables do.
var windows1252Decode = [128]Codepoint{
	0x20AC, 0, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0, 0x017D, 0,
	0, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0, 0x017E, 0x0178,
	0x00A0, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7,
	0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x00AD, 0x00AE, 0x00AF,
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7,
	0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF,
	0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5, 0x00C6, 0x00C7,
	0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC, 0x00CD, 0x00CE, 0x00CF,
	0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4, 0x00D5, 0x00D6, 0x00D7,
	0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC, 0x00DD, 0x00DE, 0x00DF,
	0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4, 0x00E5, 0x00E6, 0x00E7,
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC, 0x00ED, 0x00EE, 0x00EF,
	0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x00F6, 0x00F7,
	0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC, 0x00FD, 0x00FE, 0x00FF,
}

// windows1252Encode is built once from windows1252Decode, sorted by
// codepoint, for the legacy encoder's binary search (spec.md §4.A).
var windows1252Encode = buildSingleByteEncodeTable(windows1252Decode[:])

type singleByteEncodeEntry struct {
	codepoint Codepoint
	b         byte
}

func buildSingleByteEncodeTable(decode []Codepoint) []singleByteEncodeEntry {
	entries := make([]singleByteEncodeEntry, 0, len(decode))
	for i, cp := range decode {
		if cp == 0 {
			continue
		}
		entries = append(entries, singleByteEncodeEntry{codepoint: cp, b: byte(0x80 + i)})
	}
	sortSingleByteEntries(entries)
	return entries
}

func sortSingleByteEntries(entries []singleByteEncodeEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].codepoint < entries[j-1].codepoint; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func singleByteEncode(table []singleByteEncodeEntry, cp Codepoint) (byte, bool) {
	lo, hi := 0, len(table)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case table[mid].codepoint == cp:
			return table[mid].b, true
		case table[mid].codepoint < cp:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
