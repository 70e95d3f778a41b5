package encoding

// TextEncoder represents an encoder that turns a host string into a
// byte stream in one of spec.md §3's ten encodings.
type TextEncoder struct {
	// Encoding holds the canonical name of the target encoding.
	Encoding EncodingName

	id    EncodingID
	state *EncoderState
}

// Encode takes a string as input and returns an encoded byte stream.
func (te *TextEncoder) Encode(text string) ([]byte, error) {
	if te.state == nil {
		return nil, NewError(TypeError, "encoding not set")
	}
	return te.state.Encode(text)
}

// EncodeInto writes as much of text into dst as fits, per spec.md
// §4.F. It is only implemented for the encodings supportsEncodeInto
// names.
func (te *TextEncoder) EncodeInto(text string, dst []byte) (read, written int, err error) {
	if te.state == nil {
		return 0, 0, NewError(TypeError, "encoding not set")
	}
	return te.state.EncodeInto(text, dst)
}

// NewTextEncoder returns a new TextEncoder targeting the encoding
// named by label.
func NewTextEncoder(label EncodingName) (*TextEncoder, error) {
	id, ok := ResolveLabel(label)
	if !ok {
		return nil, errLabelUnknown
	}

	return &TextEncoder{
		Encoding: CanonicalName(id),
		id:       id,
		state:    newEncoderState(id),
	}, nil
}
