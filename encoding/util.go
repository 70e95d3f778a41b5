package encoding

import (
	"github.com/dop251/goja"
)

// exportArrayBuffer extracts the raw bytes backing a JS ArrayBuffer or
// typed array value passed to decode(), matching the WHATWG
// BufferSource union spec.md §4.F's Decode operation accepts.
func exportArrayBuffer(rt *goja.Runtime, v goja.Value) ([]byte, error) {
	exported := v.Export()

	switch data := exported.(type) {
	case goja.ArrayBuffer:
		return data.Bytes(), nil
	case []byte:
		return data, nil
	}

	obj := v.ToObject(rt)
	if obj == nil {
		return nil, NewError(TypeError, "argument is not a BufferSource")
	}

	bufferVal := obj.Get("buffer")
	if bufferVal == nil || goja.IsUndefined(bufferVal) {
		return nil, NewError(TypeError, "argument is not a BufferSource")
	}

	ab, ok := bufferVal.Export().(goja.ArrayBuffer)
	if !ok {
		return nil, NewError(TypeError, "argument is not a BufferSource")
	}
	return ab.Bytes(), nil
}

// setReadOnlyPropertyOf defines a non-writable, non-configurable,
// enumerable data property on obj, matching the WHATWG IDL
// `[SameObject] readonly attribute` shape of TextDecoder/TextEncoder's
// exposed fields (spec.md §4.F).
func setReadOnlyPropertyOf(obj *goja.Object, name string, value goja.Value) error {
	return obj.DefineDataProperty(name, value, goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_TRUE)
}
