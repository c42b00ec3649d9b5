package wire

// WriteTag writes a field header.
func (e *Encoder) WriteTag(num FieldNumber, wireType WireType) {
	e.WriteVarint(uint64(MakeTag(num, wireType)))
}

// Field writers combine WriteTag with a single value write.

func (e *Encoder) WriteVarintField(num FieldNumber, v uint64) {
	e.WriteTag(num, WireVarint)
	e.WriteVarint(v)
}

func (e *Encoder) WriteVarint64Field(num FieldNumber, v int64) {
	e.WriteTag(num, WireVarint)
	e.WriteVarint64(v)
}

func (e *Encoder) WriteSVarintField(num FieldNumber, v int64) {
	e.WriteTag(num, WireVarint)
	e.WriteSVarint(v)
}

func (e *Encoder) WriteBooleanField(num FieldNumber, v bool) {
	e.WriteTag(num, WireVarint)
	e.WriteBoolean(v)
}

func (e *Encoder) WriteFixed32Field(num FieldNumber, v uint32) {
	e.WriteTag(num, WireFixed32)
	e.WriteFixed32(v)
}

func (e *Encoder) WriteSFixed32Field(num FieldNumber, v int32) {
	e.WriteTag(num, WireFixed32)
	e.WriteSFixed32(v)
}

func (e *Encoder) WriteFixed64Field(num FieldNumber, v uint64) {
	e.WriteTag(num, WireFixed64)
	e.WriteFixed64(v)
}

func (e *Encoder) WriteSFixed64Field(num FieldNumber, v int64) {
	e.WriteTag(num, WireFixed64)
	e.WriteSFixed64(v)
}

func (e *Encoder) WriteFloatField(num FieldNumber, v float32) {
	e.WriteTag(num, WireFixed32)
	e.WriteFloat(v)
}

func (e *Encoder) WriteDoubleField(num FieldNumber, v float64) {
	e.WriteTag(num, WireFixed64)
	e.WriteDouble(v)
}

func (e *Encoder) WriteStringField(num FieldNumber, s string) {
	e.WriteTag(num, WireBytes)
	e.WriteString(s)
}

func (e *Encoder) WriteBytesField(num FieldNumber, b []byte) {
	e.WriteTag(num, WireBytes)
	e.WriteBytes(b)
}

// WriteVarintValueField writes a loosely typed number as a varint field. On
// error nothing is written.
func (e *Encoder) WriteVarintValueField(num FieldNumber, v any) error {
	u, err := coerceVarint(v)
	if err != nil {
		return err
	}
	e.WriteVarintField(num, u)
	return nil
}
