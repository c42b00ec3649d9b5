package wire

import (
	"fmt"
)

// Decoder handles low-level protobuf wire format decoding over a borrowed
// byte slice. It is the reader half of the codec and tracks the wire type of
// the field currently being dispatched by ReadFields.
//
// A Decoder is not safe for concurrent use; nested messages are read
// re-entrantly on the same Decoder.
type Decoder struct {
	buf      []byte
	pos      int
	wireType WireType
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// Reset points the decoder at new data.
func (d *Decoder) Reset(data []byte) {
	d.buf = data
	d.pos = 0
	d.wireType = WireVarint
}

// Len returns the logical length of the data.
func (d *Decoder) Len() int { return len(d.buf) }

// Pos returns the offset of the next byte to be read.
func (d *Decoder) Pos() int { return d.pos }

// SetPos moves the read position. Positions outside [0, Len()] are clamped.
func (d *Decoder) SetPos(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(d.buf):
		pos = len(d.buf)
	}
	d.pos = pos
}

// Done reports whether every byte has been consumed.
func (d *Decoder) Done() bool { return d.pos >= len(d.buf) }

// Data returns the full underlying data.
func (d *Decoder) Data() []byte { return d.buf }

// WireType returns the wire type of the field currently being dispatched.
// It is only meaningful inside a FieldFunc.
func (d *Decoder) WireType() WireType { return d.wireType }

// FieldFunc handles one field of a message being read into v. It should
// consume the field's value; leaving the position untouched makes the caller
// skip the field.
type FieldFunc[T any] func(num FieldNumber, v T, d *Decoder) error

// ReadFields dispatches every field between the current position and end to
// fn and returns v. Fields fn does not consume are skipped by wire type.
func ReadFields[T any](d *Decoder, fn FieldFunc[T], v T, end int) (T, error) {
	if end > len(d.buf) {
		return v, fmt.Errorf("%w: message end %d past data length %d", ErrUnexpectedEOF, end, len(d.buf))
	}

	for d.pos < end {
		offset := d.pos
		tag, err := d.ReadVarint()
		if err != nil {
			return v, fmt.Errorf("failed to decode field tag at offset %d: %w", offset, err)
		}

		num, wireType := ParseTag(Tag(tag))
		d.wireType = wireType
		start := d.pos

		if err := fn(num, v, d); err != nil {
			return v, wrapWithField(err, num, offset)
		}

		if d.pos == start {
			if err := d.Skip(Tag(tag)); err != nil {
				return v, wrapWithField(err, num, offset)
			}
		}
	}

	if d.pos > end {
		return v, fmt.Errorf("%w: field data overruns message end %d", ErrUnexpectedEOF, end)
	}
	return v, nil
}

// ReadMessage reads a length-delimited message at the current position and
// dispatches its fields to fn.
func ReadMessage[T any](d *Decoder, fn FieldFunc[T], v T) (T, error) {
	_, end, err := d.readLength()
	if err != nil {
		return v, err
	}
	return ReadFields(d, fn, v, end)
}

// Skip advances past the value of a field with the given tag.
func (d *Decoder) Skip(tag Tag) error {
	_, wireType := ParseTag(tag)
	switch wireType {
	case WireVarint:
		return d.skipVarint()
	case WireFixed64:
		return d.skipN(8)
	case WireBytes:
		_, end, err := d.readLength()
		if err != nil {
			return err
		}
		d.pos = end
		return nil
	case WireFixed32:
		return d.skipN(4)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedWireType, wireType)
	}
}

func (d *Decoder) skipN(n int) error {
	if n > len(d.buf)-d.pos {
		return fmt.Errorf("%w: cannot skip %d bytes, only %d available", ErrUnexpectedEOF, n, len(d.buf)-d.pos)
	}
	d.pos += n
	return nil
}

// readLength reads a varint length prefix and returns the bounds of the
// payload that follows it. The position is left at the payload start.
func (d *Decoder) readLength() (int, int, error) {
	n, err := d.ReadVarint()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode length: %w", err)
	}
	if n > uint64(len(d.buf)-d.pos) {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrUnexpectedEOF, n, len(d.buf)-d.pos)
	}
	return d.pos, d.pos + int(n), nil
}
