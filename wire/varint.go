package wire

// maxVarintLen is the longest varint that can encode a 64-bit value.
const maxVarintLen = 10

// DECODER METHODS

// ReadVarint decodes an unsigned varint from the current position.
func (d *Decoder) ReadVarint() (uint64, error) {
	buf, pos := d.buf, d.pos

	// Most varints on the wire are tags and small lengths.
	if pos < len(buf) && buf[pos] < 0x80 {
		d.pos++
		return uint64(buf[pos]), nil
	}

	var v uint64
	for i := 0; i < maxVarintLen; i++ {
		if pos >= len(buf) {
			return 0, ErrUnexpectedEOF
		}
		b := buf[pos]
		pos++

		if i == maxVarintLen-1 {
			// The 10th byte holds only bit 63.
			if b >= 0x80 {
				return 0, ErrVarintTooLong
			}
			if b > 1 {
				return 0, ErrVarintOverflow
			}
		}

		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			d.pos = pos
			return v, nil
		}
	}

	return 0, ErrVarintTooLong
}

// ReadVarint64 decodes a varint written from a signed value. The 64 bits are
// reinterpreted as two's complement, so it only recovers negative values that
// were written that way (int32, int64 and enum fields).
func (d *Decoder) ReadVarint64() (int64, error) {
	v, err := d.ReadVarint()
	return int64(v), err
}

// ReadInt32 decodes a varint as int32
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadVarint()
	return int32(v), err
}

// ReadUint32 decodes a varint as uint32
func (d *Decoder) ReadUint32() (uint32, error) {
	v, err := d.ReadVarint()
	return uint32(v), err
}

// ReadSVarint decodes a zigzag-encoded signed varint
func (d *Decoder) ReadSVarint() (int64, error) {
	v, err := d.ReadVarint()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(v), nil
}

// ReadSVarint32 decodes a zigzag-encoded signed varint as int32
func (d *Decoder) ReadSVarint32() (int32, error) {
	v, err := d.ReadVarint()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag32(v), nil
}

// ReadBoolean decodes a varint as bool
func (d *Decoder) ReadBoolean() (bool, error) {
	v, err := d.ReadVarint()
	return v != 0, err
}

// skipVarint skips over a varint without decoding it
func (d *Decoder) skipVarint() error {
	for i := 0; i < maxVarintLen; i++ {
		if d.pos+i >= len(d.buf) {
			return ErrUnexpectedEOF
		}
		if d.buf[d.pos+i] < 0x80 {
			d.pos += i + 1
			return nil
		}
	}
	return ErrVarintTooLong
}

// ENCODER METHODS

// WriteVarint encodes a uint64 as varint
func (e *Encoder) WriteVarint(v uint64) {
	if v > 0x0fffffff {
		e.writeBigVarint(v)
		return
	}

	e.grow(4)
	buf := e.buf[e.pos:]

	if v < 1<<7 {
		buf[0] = byte(v)
		e.pos++
		return
	}
	buf[0] = byte(v) | 0x80
	if v < 1<<14 {
		buf[1] = byte(v >> 7)
		e.pos += 2
		return
	}
	buf[1] = byte(v>>7) | 0x80
	if v < 1<<21 {
		buf[2] = byte(v >> 14)
		e.pos += 3
		return
	}
	buf[2] = byte(v>>14) | 0x80
	buf[3] = byte(v >> 21)
	e.pos += 4
}

func (e *Encoder) writeBigVarint(v uint64) {
	e.grow(maxVarintLen)
	e.pos += putVarint(e.buf[e.pos:], v)
}

// WriteVarint64 encodes a signed value as its 64-bit two's complement, which
// always takes 10 bytes for negative numbers.
func (e *Encoder) WriteVarint64(v int64) {
	e.WriteVarint(uint64(v))
}

// WriteInt32 encodes an int32 as varint, sign-extending negative values.
func (e *Encoder) WriteInt32(v int32) {
	e.WriteVarint(uint64(int64(v)))
}

// WriteUint32 encodes a uint32 as varint
func (e *Encoder) WriteUint32(v uint32) {
	e.WriteVarint(uint64(v))
}

// WriteSVarint encodes a signed value with zigzag encoding
func (e *Encoder) WriteSVarint(v int64) {
	e.WriteVarint(EncodeZigZag64(v))
}

// WriteSVarint32 encodes a signed int32 with zigzag encoding
func (e *Encoder) WriteSVarint32(v int32) {
	e.WriteVarint(EncodeZigZag32(v))
}

// WriteBoolean encodes a bool as varint
func (e *Encoder) WriteBoolean(v bool) {
	if v {
		e.WriteVarint(1)
	} else {
		e.WriteVarint(0)
	}
}

// WriteVarintValue encodes a loosely typed number as varint. Non-numeric input
// encodes as 0; values outside [-2^63, 2^64) are rejected with
// ErrValueOutOfRange and nothing is written.
func (e *Encoder) WriteVarintValue(v any) error {
	u, err := coerceVarint(v)
	if err != nil {
		return err
	}
	e.WriteVarint(u)
	return nil
}

// UTILITY FUNCTIONS

// putVarint writes v at the start of buf, which must have room for it, and
// returns the number of bytes written.
func putVarint(buf []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag32 encodes a signed 32-bit integer using zigzag encoding
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}
