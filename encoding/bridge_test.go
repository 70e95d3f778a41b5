package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8ToUTF16_BMP(t *testing.T) {
	units, err := UTF8ToUTF16([]byte("A水"))
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0x0041, 0x6C34}, units)
}

func TestUTF8ToUTF16_SurrogatePair(t *testing.T) {
	units, err := UTF8ToUTF16([]byte("\U0001D11E"))
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0xD834, 0xDD1E}, units)
}

func TestUTF8ToUTF16_RejectsOverlong(t *testing.T) {
	// 0xE0 0x80 0x80 is a three-byte overlong encoding of NUL. (The
	// two-byte form 0xC0 0x80 is reported as ErrInvalidLead instead,
	// since 0xC0 can never start a sequence.)
	_, err := UTF8ToUTF16([]byte{0xE0, 0x80, 0x80})
	assert.Error(t, err)

	bridgeErr, ok := err.(*BridgeError)
	if assert.True(t, ok, "expected *BridgeError, got %T", err) {
		assert.Equal(t, ErrOverlong, bridgeErr.Code)
	}
}

func TestUTF8ToUTF16_RejectsEncodedSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 decodes to U+D800, a surrogate.
	_, err := UTF8ToUTF16([]byte{0xED, 0xA0, 0x80})
	assert.Error(t, err)
}

func TestUTF8ToUTF16_RejectsTruncatedSequence(t *testing.T) {
	_, err := UTF8ToUTF16([]byte{0xE6, 0xB0})
	assert.Error(t, err)
}

func TestUTF16ToUTF8_BMP(t *testing.T) {
	out, err := UTF16ToUTF8([]uint16{0x0041, 0x6C34})
	assert.NoError(t, err)
	assert.Equal(t, "A水", string(out))
}

func TestUTF16ToUTF8_SurrogatePair(t *testing.T) {
	out, err := UTF16ToUTF8([]uint16{0xD834, 0xDD1E})
	assert.NoError(t, err)
	assert.Equal(t, "\U0001D11E", string(out))
}

func TestUTF16ToUTF8_TruncatedPair(t *testing.T) {
	_, err := UTF16ToUTF8([]uint16{0xD834})
	assert.Error(t, err)
}

func TestUTF16ToUTF8_MissingLowSurrogate(t *testing.T) {
	_, err := UTF16ToUTF8([]uint16{0xD834, 0x0041})
	assert.Error(t, err)
}

func TestUTF16ToUTF8_UnexpectedLowSurrogate(t *testing.T) {
	_, err := UTF16ToUTF8([]uint16{0xDD1E})
	assert.Error(t, err)
}

func TestDecodeUTF8Permissive_LoneSurrogate(t *testing.T) {
	// WTF-8 encoding of a lone high surrogate U+D834.
	cp, size := decodeUTF8Permissive([]byte{0xED, 0xA0, 0xB4})
	assert.Equal(t, 3, size)
	assert.Equal(t, Codepoint(0xD834), cp)
}

func TestCodepointUTF16Width(t *testing.T) {
	assert.Equal(t, 1, codepointUTF16Width('A'))
	assert.Equal(t, 1, codepointUTF16Width(0xD834), "a lone surrogate should be width 1")
	assert.Equal(t, 2, codepointUTF16Width(0x1D11E), "a supplementary-plane codepoint should be width 2")
}
