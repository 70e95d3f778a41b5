package encoding

import "strings"

// EncodingID is the closed tagged enumeration of spec.md §3: the set
// of encodings this module can decode and/or encode.
type EncodingID int

const (
	UTF8 EncodingID = iota
	UTF16LE
	UTF16BE
	ShiftJIS
	Windows1252
	Windows1251
	Big5
	EUCKR
	EUCJP
	GB18030

	numEncodings
)

// canonicalNames holds the WHATWG canonical name for each EncodingID,
// returned by CanonicalName (spec.md §4.C's "companion function").
var canonicalNames = [numEncodings]string{
	UTF8:        "utf-8",
	UTF16LE:     "utf-16le",
	UTF16BE:     "utf-16be",
	ShiftJIS:    "shift_jis",
	Windows1252: "windows-1252",
	Windows1251: "windows-1251",
	Big5:        "big5",
	EUCKR:       "euc-kr",
	EUCJP:       "euc-jp",
	GB18030:     "gb18030",
}

// CanonicalName returns the WHATWG-registered canonical name for id.
func CanonicalName(id EncodingID) string {
	if id < 0 || int(id) >= len(canonicalNames) {
		return ""
	}
	return canonicalNames[id]
}

// labelAliases is the label → EncodingID alias table of spec.md §4.C,
// generalized from the teacher's two-encoding label switch and
// grounded in quickjs-encoding.c's resolve_encoding_label (same set
// of aliases, re-expressed as a map instead of a chain of
// strncasecmp calls — spec.md §9 Open Question 3 explicitly calls
// the fixed-length-comparison style a micro-optimization, not a
// semantic requirement).
var labelAliases = map[string]EncodingID{
	"unicode-1-1-utf-8": UTF8,
	"unicode11utf8":      UTF8,
	"unicode20utf8":      UTF8,
	"utf-8":              UTF8,
	"utf8":               UTF8,
	"x-unicode20utf8":    UTF8,

	"utf-16le": UTF16LE,
	"utf-16":   UTF16LE,

	"utf-16be": UTF16BE,

	"shift_jis":    ShiftJIS,
	"shift-jis":    ShiftJIS,
	"sjis":         ShiftJIS,
	"csshiftjis":   ShiftJIS,
	"ms932":        ShiftJIS,
	"ms_kanji":     ShiftJIS,
	"windows-31j":  ShiftJIS,
	"x-sjis":       ShiftJIS,

	"windows-1252": Windows1252,
	"cp1252":       Windows1252,
	"x-cp1252":     Windows1252,
	"iso-8859-1":   Windows1252,
	"iso8859-1":    Windows1252,
	"iso_8859-1":   Windows1252,
	"latin1":       Windows1252,
	"l1":           Windows1252,
	"us-ascii":     Windows1252,
	"ascii":        Windows1252,
	"cp819":        Windows1252,
	"csisolatin1":  Windows1252,
	"ibm819":       Windows1252,
	"iso-ir-100":   Windows1252,

	"windows-1251": Windows1251,
	"cp1251":       Windows1251,
	"x-cp1251":     Windows1251,

	"big5":       Big5,
	"big5-hkscs": Big5,
	"cn-big5":    Big5,
	"csbig5":     Big5,
	"x-x-big5":   Big5,

	"euc-kr":         EUCKR,
	"cseuckr":        EUCKR,
	"korean":         EUCKR,
	"ks_c_5601-1987": EUCKR,
	"ks-c5601":       EUCKR,
	"ksc5601":        EUCKR,
	"ksc_5601":       EUCKR,
	"iso-ir-149":     EUCKR,
	"csksc56011987":  EUCKR,

	"euc-jp":             EUCJP,
	"cseucpkdfmtjapanese": EUCJP,
	"x-euc-jp":            EUCJP,

	"gb18030":    GB18030,
	"gb2312":     GB18030,
	"gbk":        GB18030,
	"chinese":    GB18030,
	"csgb2312":   GB18030,
	"csiso58gb231280": GB18030,
	"x-gbk":      GB18030,
	"gb_2312-80": GB18030,
	"iso-ir-58":  GB18030,
}

// ResolveLabel implements the label resolver of spec.md §4.C: strip
// leading/trailing ASCII whitespace, fold ASCII case, and look the
// result up in the alias table. An empty label (after trimming)
// resolves to UTF-8, matching the WHATWG default and the teacher's
// empty-label case.
//
// A label with no match returns ok=false; the callers (NewTextDecoder
// and NewTextEncoder) surface that as errLabelUnknown, a RangeError,
// per spec.md §6.
func ResolveLabel(label string) (id EncodingID, ok bool) {
	trimmed := strings.TrimFunc(label, isASCIIWhitespace)
	if trimmed == "" {
		return UTF8, true
	}

	folded := strings.ToLower(trimmed)
	id, ok = labelAliases[folded]
	return id, ok
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// supportsEncodeInto reports whether EncodeInto (spec.md §4.F, §9 Open
// Question 1) is implemented for id. Per the open question's
// resolution, the partial coverage of the original is preserved
// rather than extended.
func supportsEncodeInto(id EncodingID) bool {
	switch id {
	case UTF8, UTF16LE, UTF16BE, ShiftJIS:
		return true
	default:
		return false
	}
}
