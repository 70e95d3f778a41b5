package encoding

import (
	"github.com/dop251/goja"
)

// TextDecoder represents a decoder for a specific text encoding, such
// as UTF-8, UTF-16, Shift_JIS, Big5, and the rest of spec.md §3's
// encoding set.
//
// A decoder takes a stream of bytes as input and emits a stream of code points.
type TextDecoder struct {
	// Encoding holds the canonical name of the decoder, per
	// CanonicalName, not necessarily the label the caller passed in.
	Encoding EncodingName

	// Fatal holds a boolean indicating whether the error mode is fatal.
	Fatal bool

	// IgnoreBOM holds a boolean indicating whether the byte order mark is ignored.
	IgnoreBOM bool

	state *DecoderState

	rt *goja.Runtime
}

// Decode takes a byte stream as input and returns a string.
func (td *TextDecoder) Decode(buffer []byte, options decodeOptions) (string, error) {
	if td.state == nil {
		return "", NewError(TypeError, "encoding not set")
	}
	return td.state.Decode(buffer, options.Stream)
}

type decodeOptions struct {
	// A boolean flag indicating whether additional data
	// will follow in subsequent calls to decode().
	//
	// Set to true if processing the data in chunks, and
	// false for the final chunk or if the data is not chunked.
	Stream bool `js:"stream"`
}

// NewTextDecoder returns a new TextDecoder object instance that will
// generate a string from a byte stream with a specific encoding.
func NewTextDecoder(rt *goja.Runtime, label string, options textDecoderOptions) (*TextDecoder, error) {
	id, ok := ResolveLabel(label)
	if !ok {
		return nil, errLabelUnknown
	}

	td := &TextDecoder{
		Encoding:  CanonicalName(id),
		IgnoreBOM: options.IgnoreBOM,
		Fatal:     options.Fatal,

		state: newDecoderState(id, options.Fatal, options.IgnoreBOM),
		rt:    rt,
	}

	return td, nil
}

// EncodingName is a type alias for the name of an encoding.
//
//nolint:revive
type EncodingName = string

type textDecoderOptions struct {
	// Fatal holds a boolean value indicating if
	// the `TextDecoder.decode()`` method must throw
	// a `TypeError` when decoding invalid data.
	//
	// It defaults to `false`, which means that the
	// decoder will substitute malformed data with a
	// replacement character.
	Fatal bool `js:"fatal"`

	// IgnoreBOM holds a boolean value indicating
	// whether the byte order mark is ignored.
	IgnoreBOM bool `js:"ignoreBOM"`
}
