package wire

import (
	"unicode/utf8"
)

// DECODER METHODS

// ReadBytes decodes a length-delimited byte array. The result shares the
// decoder's buffer; copy it if it must outlive the input.
func (d *Decoder) ReadBytes() ([]byte, error) {
	start, end, err := d.readLength()
	if err != nil {
		return nil, err
	}
	d.pos = end
	return d.buf[start:end:end], nil
}

// ReadString decodes a length-delimited UTF-8 string. Malformed UTF-8 never
// fails; offending bytes decode as U+FFFD.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return decodeUTF8(b), nil
}

// ReadUTF16String decodes a length-delimited UTF-8 string into UTF-16 code
// units.
func (d *Decoder) ReadUTF16String() ([]uint16, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return nil, err
	}
	return decodeUTF16(b), nil
}

// ENCODER METHODS

// WriteBytes encodes a byte array as length-delimited
func (e *Encoder) WriteBytes(data []byte) {
	e.WriteVarint(uint64(len(data)))
	e.WriteRaw(data)
}

// WriteString encodes a string as length-delimited UTF-8. Invalid bytes in s
// are written as U+FFFD.
func (e *Encoder) WriteString(s string) {
	valid := utf8.ValidString(s)
	if valid {
		e.grow(len(s) + 1)
	} else {
		e.grow(3*len(s) + 1)
	}

	e.pos++ // reserve 1 byte for short string length
	start := e.pos
	if valid {
		e.pos += copy(e.buf[e.pos:], s)
	} else {
		e.pos = writeUTF8(e.buf, e.pos, s)
	}
	e.finishLength(start)
}

// WriteUTF16String encodes UTF-16 code units as a length-delimited UTF-8
// string.
func (e *Encoder) WriteUTF16String(units []uint16) {
	e.grow(3*len(units) + 1)
	e.pos++ // reserve 1 byte for short string length
	start := e.pos
	e.pos = writeUTF16(e.buf, e.pos, units)
	e.finishLength(start)
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the size needed to encode the given string
func StringSize(s string) int {
	if !utf8.ValidString(s) {
		n := 0
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				n += len(replacement)
			} else {
				n += size
			}
			i += size
		}
		return VarintSize(uint64(n)) + n
	}
	return VarintSize(uint64(len(s))) + len(s)
}
