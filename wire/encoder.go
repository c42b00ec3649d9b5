package wire

// Encoder handles low-level protobuf wire format encoding into a growable
// buffer. It is the writer half of the codec: primitives are written at the
// current position and the buffer doubles whenever a write would not fit.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf []byte // len(buf) is the allocated capacity
	pos int
}

// NewEncoder creates a new wire format encoder with no buffer allocated.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewEncoderSize creates an encoder whose buffer starts at size bytes.
func NewEncoderSize(size int) *Encoder {
	if size < 0 {
		size = 0
	}
	return &Encoder{buf: make([]byte, size)}
}

// grow ensures at least n bytes are available past the current position.
// Capacity doubles from Config.InitialCapacity; all previously allocated
// bytes are carried over, not just the ones before pos, because length
// backpatching writes into the region past pos.
func (e *Encoder) grow(n int) {
	length := len(e.buf)
	if length == 0 {
		length = config.InitialCapacity
	}
	for length < e.pos+n {
		length *= 2
	}
	if length != len(e.buf) {
		buf := make([]byte, length)
		copy(buf, e.buf)
		e.buf = buf
	}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.pos }

// Cap returns the allocated capacity.
func (e *Encoder) Cap() int { return len(e.buf) }

// Bytes returns the encoded bytes. The slice aliases the encoder's buffer and
// is only valid until the next write.
func (e *Encoder) Bytes() []byte {
	return e.buf[:e.pos:e.pos]
}

// Reset clears the encoder buffer, keeping its capacity.
func (e *Encoder) Reset() {
	e.pos = 0
}

// Finish freezes the written region and hands it to a Decoder positioned at
// its start. The encoder gives up its buffer and is left empty.
func (e *Encoder) Finish() *Decoder {
	d := NewDecoder(e.buf[:e.pos:e.pos])
	e.buf = nil
	e.pos = 0
	return d
}

// WriteRaw appends p without any framing.
func (e *Encoder) WriteRaw(p []byte) {
	e.grow(len(p))
	e.pos += copy(e.buf[e.pos:], p)
}
