package encoding

import "fmt"

// ErrorName is a type alias for the name of an encoding error.
//
// Note that it is a type alias, and not a binding, so that it
// is not interpreted as an object by goja.
type ErrorName = string

const (
	// RangeError is thrown if the value of label is unknown, or
	// is one of the values leading to a 'replacement' decoding
	// algorithm ("iso-2022-cn" or "iso-2022-cn-ext").
	RangeError ErrorName = "RangeError"

	// TypeError is thrown if the value if the Decoder fatal option
	// is set and the input data cannot be decoded, or if the decoder
	// or encoder receives an argument of the wrong shape.
	TypeError ErrorName = "TypeError"
)

// Error kinds from the taxonomy of spec.md §7. These all surface as
// one of the two ErrorName values above (goja/JS has no distinct
// class for most of them), but are kept as Go sentinel wrapping so
// callers that inspect errors with errors.Is can still tell them
// apart.
var (
	// errLabelUnknown is the RangeError NewTextDecoder and
	// NewTextEncoder return when ResolveLabel matches no known alias.
	errLabelUnknown = NewError(RangeError, "unsupported encoding label")

	// errDecodeMalformed is wrapped into a TypeError by a decoder
	// running in fatal mode when it hits a malformed sequence,
	// including a sequence left incomplete at end-of-stream
	// (spec.md's IncompleteAtEOF, which is just DecodeMalformed in a
	// final, non-streaming call).
	errDecodeMalformed = NewError(TypeError, "the encoded data was not valid")
)

// Error represents an encoding error.
type Error struct {
	// Name contains one of the strings associated with an error name.
	Name ErrorName `json:"name"`

	// Message represents message or description associated with the given error name.
	Message string `json:"message"`
}

// Error implements the `error` interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// NewError returns a new Error instance.
func NewError(name, message string) *Error {
	return &Error{
		Name:    name,
		Message: message,
	}
}

var _ error = (*Error)(nil)
