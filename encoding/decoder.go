package encoding

import "bytes"

// DecoderState is the per-instance mutable state of spec.md §3. It is
// never shared between decoder handles and never touched by more than
// one goroutine at a time — k6 runs each VU's JS on a single
// goroutine, so no locking is needed here (spec.md §5).
type DecoderState struct {
	encoding  EncodingID
	fatal     bool
	ignoreBOM bool

	// pending holds bytes left over from a prior streaming call that
	// did not complete a sequence. Its capacity bound varies by
	// encoding (spec.md §3 invariants): up to 3 for GB18030, up to 2
	// for EUC-JP's 0x8F-prefixed form, up to 4 for a lone UTF-16 high
	// surrogate, 1 for the other double-byte encodings.
	pending []byte

	// bomSeen is set once the BOM check has been resolved one way or
	// the other (see bomDecision), so a BOM is never stripped twice
	// and is never skipped just because too few bytes have arrived yet.
	bomSeen bool
}

// newDecoderState constructs the state for a freshly built TextDecoder.
func newDecoderState(id EncodingID, fatal, ignoreBOM bool) *DecoderState {
	return &DecoderState{
		encoding:  id,
		fatal:     fatal,
		ignoreBOM: ignoreBOM,
	}
}

// decodeResult is the outcome of one decodeChunk call: the produced
// UTF-8 text and, when fatal mode tripped, the malformed-input error.
// Per spec.md §5's allocation-discipline rule, state mutation (saving
// `pending`) happens only after the scan loop has produced its final
// verdict — decodeChunk builds its own local pending-bytes candidate
// and the shell commits it to the state only on a non-error path, so
// a fatal error never leaves pending in a half-updated condition.
type decodeResult struct {
	text    []byte
	pending []byte
	bomSeen bool
	err     error
}

// Decode runs the outer shell of spec.md §4.D over chunk and returns
// the produced text. chunk may be empty (a final flush call).
func (s *DecoderState) Decode(chunk []byte, stream bool) (string, error) {
	work := chunk
	if len(s.pending) > 0 {
		work = make([]byte, 0, len(s.pending)+len(chunk))
		work = append(work, s.pending...)
		work = append(work, chunk...)
	}

	// BOM stage (UTF-8/16 only). Resolved only once enough bytes have
	// arrived to decide either way; a BOM split across a stream:true
	// chunk boundary (e.g. a 1-byte UTF-16 BOM half) leaves bomSeen
	// false so the next call's carried-over pending bytes still get
	// the check.
	if !s.bomSeen && !s.ignoreBOM {
		if n, determined := bomDecision(s.encoding, work, stream); determined {
			work = work[n:]
			s.bomSeen = true
		}
	}

	res := decodeChunk(s.encoding, work, stream, s.fatal)
	if res.err != nil {
		// Fatal: per spec.md §7, streaming state is not corrupted,
		// but the caller is expected to discard the decoder anyway.
		return "", res.err
	}

	if !stream {
		s.pending = nil
		s.bomSeen = false
	} else {
		s.pending = res.pending
	}

	return string(res.text), nil
}

// bomDecision reports whether the BOM check for id can be resolved
// against work as seen so far. determined is false only when work is a
// strict, matching prefix of the encoding's BOM and stream is true —
// more bytes may still arrive to complete or break the match, so the
// caller must hold off rather than lock in "no BOM" prematurely. n is
// the number of leading bytes to strip; it is only meaningful when
// determined is true.
func bomDecision(id EncodingID, work []byte, stream bool) (n int, determined bool) {
	bom := bomBytes(id)
	if bom == nil {
		return 0, true
	}
	if len(work) >= len(bom) {
		if bytes.Equal(work[:len(bom)], bom) {
			return len(bom), true
		}
		return 0, true
	}
	if !bytes.Equal(work, bom[:len(work)]) {
		return 0, true // already diverged from the BOM, no need to wait
	}
	if !stream {
		return 0, true // no more bytes coming, too short to ever be a BOM
	}
	return 0, false
}

// bomBytes returns the literal BOM for id, or nil if the encoding has none.
func bomBytes(id EncodingID) []byte {
	switch id {
	case UTF8:
		return []byte{0xEF, 0xBB, 0xBF}
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	}
	return nil
}

// decodeChunk dispatches to the per-encoding state machine of
// spec.md §4.D. Every implementation shares the same contract: consume
// as much of work as it can, emit UTF-8 text via appendUTF8/
// appendReplacement, and report any trailing incomplete sequence as
// `pending` (streaming) or as a malformed-at-EOF error (final).
func decodeChunk(id EncodingID, work []byte, stream, fatal bool) decodeResult {
	switch id {
	case UTF8:
		return decodeUTF8(work, stream, fatal)
	case UTF16LE:
		return decodeUTF16(work, stream, fatal, false)
	case UTF16BE:
		return decodeUTF16(work, stream, fatal, true)
	case ShiftJIS:
		return decodeShiftJIS(work, stream, fatal)
	case Windows1252:
		return decodeSingleByte(work, windows1252Decode[:], fatal)
	case Windows1251:
		return decodeSingleByte(work, windows1251Decode[:], fatal)
	case Big5:
		return decodeBig5(work, stream, fatal)
	case EUCKR:
		return decodeEUCKR(work, stream, fatal)
	case EUCJP:
		return decodeEUCJP(work, stream, fatal)
	case GB18030:
		return decodeGB18030(work, stream, fatal)
	default:
		return decodeResult{err: NewError(TypeError, "unsupported encoding")}
	}
}

// trailConsumeLength implements the single most
// commonly-missed WHATWG rule (spec.md §4.D, §9 "Replacement policy
// symmetry"): if the trail byte that caused the error is itself ASCII,
// it is not consumed — the cursor only advances past the lead byte,
// so the ASCII byte is re-examined as the start of the next sequence.
// It returns the number of bytes the caller should advance the cursor
// by (1 or 2).
func trailConsumeLength(trail byte) int {
	if trail <= 0x7F {
		return 1
	}
	return 2
}
