package wire

// WriteRawMessage writes v as a length-delimited payload without a tag. If fn
// fails, everything it wrote is discarded along with the reserved byte.
//
// The payload length is not known until fn returns, so one byte is reserved
// for it up front. Payloads of 128 bytes or more need a longer prefix; in
// that case the payload is shifted right in place to make room.
func WriteRawMessage[T any](e *Encoder, fn func(T, *Encoder) error, v T) error {
	e.grow(1)
	e.pos++ // reserve 1 byte for short message length
	start := e.pos

	if err := fn(v, e); err != nil {
		e.pos = start - 1
		return err
	}

	e.finishLength(start)
	return nil
}

// WriteMessage writes v as an embedded message field.
func WriteMessage[T any](e *Encoder, num FieldNumber, fn func(T, *Encoder) error, v T) error {
	e.WriteTag(num, WireBytes)
	return WriteRawMessage(e, fn, v)
}

// finishLength backpatches the length of the payload written since start
// into the byte reserved at start-1, widening the prefix when needed, and
// leaves the position just past the payload.
func (e *Encoder) finishLength(start int) {
	n := e.pos - start
	size := VarintSize(uint64(n))
	if extra := size - 1; extra > 0 {
		e.grow(extra)
		copy(e.buf[start+extra:], e.buf[start:e.pos])
	}

	putVarint(e.buf[start-1:], uint64(n))
	e.pos = start - 1 + size + n
}
