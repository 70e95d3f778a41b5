package encoding

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Codec adapts this package's DecoderState/EncoderState core to the
// golang.org/x/text/encoding.Encoding interface shape, so a Codec can
// be passed anywhere that interface is expected even though the table
// data and state machines backing it are ours, not x/text's
// charmap/unicode/japanese/korean/chinese packages (see DESIGN.md).
type Codec struct {
	id EncodingID
}

var _ encoding.Encoding = (*Codec)(nil)

// NewCodec returns the Codec for id.
func NewCodec(id EncodingID) *Codec {
	return &Codec{id: id}
}

func (c *Codec) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{state: newDecoderState(c.id, false, false)}}
}

func (c *Codec) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encodeTransformer{state: newEncoderState(c.id)}}
}

// decodeTransformer is a non-chunked transform.Transformer: it only
// accepts a call with atEOF true, reflecting that DecoderState's
// streaming contract (spec.md §4.D) is driven directly by
// TextDecoder.decode's stream flag rather than through
// transform.Transformer's short-write protocol.
type decodeTransformer struct {
	state *DecoderState
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	text, decErr := t.state.Decode(src, false)
	if decErr != nil {
		return 0, 0, decErr
	}
	if len(dst) < len(text) {
		return 0, 0, transform.ErrShortDst
	}
	n := copy(dst, text)
	return n, len(src), nil
}

func (t *decodeTransformer) Reset() {
	t.state = newDecoderState(t.state.encoding, t.state.fatal, t.state.ignoreBOM)
}

type encodeTransformer struct {
	state *EncoderState
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	out, encErr := t.state.Encode(string(src))
	if encErr != nil {
		return 0, 0, encErr
	}
	if len(dst) < len(out) {
		return 0, 0, transform.ErrShortDst
	}
	n := copy(dst, out)
	return n, len(src), nil
}

func (t *encodeTransformer) Reset() {
	t.state = newEncoderState(t.state.encoding)
}
