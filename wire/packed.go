package wire

import "fmt"

// Packed readers append to dst and return it. When the field arrived with a
// length-delimited wire type every element in the region is decoded;
// otherwise the field is a legacy unpacked element and exactly one value is
// read. Either way repeated calls accumulate into the same slice.

func readPacked[E any](d *Decoder, dst []E, read func(*Decoder) (E, error)) ([]E, error) {
	if d.wireType != WireBytes {
		v, err := read(d)
		if err != nil {
			return dst, err
		}
		return append(dst, v), nil
	}

	_, end, err := d.readLength()
	if err != nil {
		return dst, err
	}
	for d.pos < end {
		v, err := read(d)
		if err != nil {
			return dst, err
		}
		dst = append(dst, v)
	}
	if d.pos != end {
		return dst, fmt.Errorf("%w: packed element overruns field end %d", ErrUnexpectedEOF, end)
	}
	return dst, nil
}

// ReadPackedVarint reads repeated uint64 varints.
func (d *Decoder) ReadPackedVarint(dst []uint64) ([]uint64, error) {
	return readPacked(d, dst, (*Decoder).ReadVarint)
}

// ReadPackedVarint64 reads repeated two's complement signed varints.
func (d *Decoder) ReadPackedVarint64(dst []int64) ([]int64, error) {
	return readPacked(d, dst, (*Decoder).ReadVarint64)
}

// ReadPackedSVarint reads repeated zigzag varints.
func (d *Decoder) ReadPackedSVarint(dst []int64) ([]int64, error) {
	return readPacked(d, dst, (*Decoder).ReadSVarint)
}

// ReadPackedBoolean reads repeated bools.
func (d *Decoder) ReadPackedBoolean(dst []bool) ([]bool, error) {
	return readPacked(d, dst, (*Decoder).ReadBoolean)
}

// ReadPackedFloat reads repeated floats.
func (d *Decoder) ReadPackedFloat(dst []float32) ([]float32, error) {
	return readPacked(d, dst, (*Decoder).ReadFloat)
}

// ReadPackedDouble reads repeated doubles.
func (d *Decoder) ReadPackedDouble(dst []float64) ([]float64, error) {
	return readPacked(d, dst, (*Decoder).ReadDouble)
}

// ReadPackedFixed32 reads repeated fixed32 values.
func (d *Decoder) ReadPackedFixed32(dst []uint32) ([]uint32, error) {
	return readPacked(d, dst, (*Decoder).ReadFixed32)
}

// ReadPackedSFixed32 reads repeated sfixed32 values.
func (d *Decoder) ReadPackedSFixed32(dst []int32) ([]int32, error) {
	return readPacked(d, dst, (*Decoder).ReadSFixed32)
}

// ReadPackedFixed64 reads repeated fixed64 values.
func (d *Decoder) ReadPackedFixed64(dst []uint64) ([]uint64, error) {
	return readPacked(d, dst, (*Decoder).ReadFixed64)
}

// ReadPackedSFixed64 reads repeated sfixed64 values.
func (d *Decoder) ReadPackedSFixed64(dst []int64) ([]int64, error) {
	return readPacked(d, dst, (*Decoder).ReadSFixed64)
}

// Packed writers emit nothing for an empty slice.

func writePacked[E any](e *Encoder, num FieldNumber, vals []E, write func(*Encoder, E)) {
	if len(vals) == 0 {
		return
	}

	e.WriteTag(num, WireBytes)
	e.grow(1)
	e.pos++ // reserve 1 byte for short length
	start := e.pos
	for _, v := range vals {
		write(e, v)
	}
	e.finishLength(start)
}

// WritePackedVarint writes a packed repeated uint64 field.
func (e *Encoder) WritePackedVarint(num FieldNumber, vals []uint64) {
	writePacked(e, num, vals, (*Encoder).WriteVarint)
}

// WritePackedVarint64 writes a packed repeated int64 field.
func (e *Encoder) WritePackedVarint64(num FieldNumber, vals []int64) {
	writePacked(e, num, vals, (*Encoder).WriteVarint64)
}

// WritePackedSVarint writes a packed repeated sint64 field.
func (e *Encoder) WritePackedSVarint(num FieldNumber, vals []int64) {
	writePacked(e, num, vals, (*Encoder).WriteSVarint)
}

// WritePackedBoolean writes a packed repeated bool field.
func (e *Encoder) WritePackedBoolean(num FieldNumber, vals []bool) {
	writePacked(e, num, vals, (*Encoder).WriteBoolean)
}

// WritePackedFloat writes a packed repeated float field.
func (e *Encoder) WritePackedFloat(num FieldNumber, vals []float32) {
	writePacked(e, num, vals, (*Encoder).WriteFloat)
}

// WritePackedDouble writes a packed repeated double field.
func (e *Encoder) WritePackedDouble(num FieldNumber, vals []float64) {
	writePacked(e, num, vals, (*Encoder).WriteDouble)
}

// WritePackedFixed32 writes a packed repeated fixed32 field.
func (e *Encoder) WritePackedFixed32(num FieldNumber, vals []uint32) {
	writePacked(e, num, vals, (*Encoder).WriteFixed32)
}

// WritePackedSFixed32 writes a packed repeated sfixed32 field.
func (e *Encoder) WritePackedSFixed32(num FieldNumber, vals []int32) {
	writePacked(e, num, vals, (*Encoder).WriteSFixed32)
}

// WritePackedFixed64 writes a packed repeated fixed64 field.
func (e *Encoder) WritePackedFixed64(num FieldNumber, vals []uint64) {
	writePacked(e, num, vals, (*Encoder).WriteFixed64)
}

// WritePackedSFixed64 writes a packed repeated sfixed64 field.
func (e *Encoder) WritePackedSFixed64(num FieldNumber, vals []int64) {
	writePacked(e, num, vals, (*Encoder).WriteSFixed64)
}
