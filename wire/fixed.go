package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DECODER METHODS

// ReadFixed32 decodes a 32-bit fixed-width value
func (d *Decoder) ReadFixed32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, fmt.Errorf("%w: not enough data for fixed32", ErrUnexpectedEOF)
	}

	value := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return value, nil
}

// ReadFixed64 decodes a 64-bit fixed-width value
func (d *Decoder) ReadFixed64() (uint64, error) {
	if d.pos+8 > len(d.buf) {
		return 0, fmt.Errorf("%w: not enough data for fixed64", ErrUnexpectedEOF)
	}

	value := binary.LittleEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return value, nil
}

// ReadSFixed32 decodes a signed 32-bit fixed-width value
func (d *Decoder) ReadSFixed32() (int32, error) {
	v, err := d.ReadFixed32()
	return int32(v), err
}

// ReadSFixed64 decodes a signed 64-bit fixed-width value
func (d *Decoder) ReadSFixed64() (int64, error) {
	v, err := d.ReadFixed64()
	return int64(v), err
}

// ReadFloat decodes a 32-bit float from fixed32 data
func (d *Decoder) ReadFloat() (float32, error) {
	v, err := d.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadDouble decodes a 64-bit float from fixed64 data
func (d *Decoder) ReadDouble() (float64, error) {
	v, err := d.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ENCODER METHODS

// WriteFixed32 encodes a 32-bit fixed-width value
func (e *Encoder) WriteFixed32(v uint32) {
	e.grow(4)
	binary.LittleEndian.PutUint32(e.buf[e.pos:], v)
	e.pos += 4
}

// WriteFixed64 encodes a 64-bit fixed-width value
func (e *Encoder) WriteFixed64(v uint64) {
	e.grow(8)
	binary.LittleEndian.PutUint64(e.buf[e.pos:], v)
	e.pos += 8
}

// WriteSFixed32 encodes a signed 32-bit fixed-width value
func (e *Encoder) WriteSFixed32(v int32) {
	e.WriteFixed32(uint32(v))
}

// WriteSFixed64 encodes a signed 64-bit fixed-width value
func (e *Encoder) WriteSFixed64(v int64) {
	e.WriteFixed64(uint64(v))
}

// WriteFloat encodes a 32-bit float as fixed32
func (e *Encoder) WriteFloat(v float32) {
	e.WriteFixed32(math.Float32bits(v))
}

// WriteDouble encodes a 64-bit float as fixed64
func (e *Encoder) WriteDouble(v float64) {
	e.WriteFixed64(math.Float64bits(v))
}
