package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLabel_EmptyDefaultsToUTF8(t *testing.T) {
	id, ok := ResolveLabel("")
	assert.True(t, ok)
	assert.Equal(t, UTF8, id)
}

func TestResolveLabel_TrimsAndFoldsCase(t *testing.T) {
	id, ok := ResolveLabel("  UTF-8\t")
	assert.True(t, ok)
	assert.Equal(t, UTF8, id)
}

func TestResolveLabel_KnownAliases(t *testing.T) {
	testCases := map[string]EncodingID{
		"utf8":           UTF8,
		"utf-16":         UTF16LE,
		"utf-16be":       UTF16BE,
		"sjis":           ShiftJIS,
		"windows-31j":    ShiftJIS,
		"cp1252":         Windows1252,
		"iso-8859-1":     Windows1252,
		"cp1251":         Windows1251,
		"big5-hkscs":     Big5,
		"ks_c_5601-1987": EUCKR,
		"x-euc-jp":       EUCJP,
		"gbk":            GB18030,
		"gb2312":         GB18030,
	}

	for label, want := range testCases {
		id, ok := ResolveLabel(label)
		if !assert.True(t, ok, "ResolveLabel(%q) failed to resolve", label) {
			continue
		}
		assert.Equal(t, want, id, "label %q", label)
	}
}

func TestResolveLabel_Unknown(t *testing.T) {
	_, ok := ResolveLabel("iso-2022-cn")
	assert.False(t, ok)
}

func TestCanonicalName_RoundTripsThroughAliases(t *testing.T) {
	for label, id := range labelAliases {
		name := CanonicalName(id)
		resolved, ok := ResolveLabel(name)
		if !assert.True(t, ok, "canonical name %q (from label %q) did not resolve", name, label) {
			continue
		}
		assert.Equal(t, id, resolved, "canonical name %q", name)
	}
}

func TestSupportsEncodeInto(t *testing.T) {
	supported := []EncodingID{UTF8, UTF16LE, UTF16BE, ShiftJIS}
	for _, id := range supported {
		assert.True(t, supportsEncodeInto(id), "expected %v to support encodeInto", id)
	}

	unsupported := []EncodingID{Windows1252, Windows1251, Big5, EUCKR, EUCJP, GB18030}
	for _, id := range unsupported {
		assert.False(t, supportsEncodeInto(id), "expected %v not to support encodeInto", id)
	}
}
