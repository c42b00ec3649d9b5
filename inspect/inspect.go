// Package inspect decodes protobuf messages without a schema, in the spirit
// of protoc --decode_raw.
package inspect

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/anirudhraja/pbf/wire"
)

// DefaultMaxDepth bounds how deep length-delimited payloads are probed for
// nested messages.
const DefaultMaxDepth = 16

// ErrInvalidFieldNumber is returned for a field numbered 0.
var ErrInvalidFieldNumber = errors.New("invalid field number 0")

// Options configures Decode.
type Options struct {
	// MaxDepth is the deepest nesting probed for embedded messages. Zero
	// means DefaultMaxDepth; a negative value disables probing.
	MaxDepth int
}

// Field is one field as found on the wire. Exactly one of the value members
// is meaningful, selected by WireType. Length-delimited payloads always set
// Bytes, plus Message when the payload parses as a message or String when it
// is valid UTF-8 instead.
type Field struct {
	Number   wire.FieldNumber
	WireType wire.WireType
	Offset   int // offset of the value, just past the tag

	Varint  uint64
	Fixed32 uint32
	Fixed64 uint64
	Bytes   []byte
	String  *string
	Message Fields
}

// Fields is a decoded message in wire order.
type Fields []Field

// Decode walks every field in data.
func Decode(data []byte, opts Options) (Fields, error) {
	w := walker{maxDepth: opts.MaxDepth}
	if w.maxDepth == 0 {
		w.maxDepth = DefaultMaxDepth
	}

	d := wire.NewDecoder(data)
	return w.fields(d, d.Len(), 0)
}

type walker struct {
	maxDepth int
}

func (w walker) fields(d *wire.Decoder, end, depth int) (Fields, error) {
	var out Fields
	_, err := wire.ReadFields(d, func(num wire.FieldNumber, out *Fields, d *wire.Decoder) error {
		if num == 0 {
			return ErrInvalidFieldNumber
		}
		f, err := w.field(num, d, depth)
		if err != nil {
			return err
		}
		*out = append(*out, f)
		return nil
	}, &out, end)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (w walker) field(num wire.FieldNumber, d *wire.Decoder, depth int) (Field, error) {
	f := Field{Number: num, WireType: d.WireType(), Offset: d.Pos()}

	var err error
	switch f.WireType {
	case wire.WireVarint:
		f.Varint, err = d.ReadVarint()
	case wire.WireFixed64:
		f.Fixed64, err = d.ReadFixed64()
	case wire.WireFixed32:
		f.Fixed32, err = d.ReadFixed32()
	case wire.WireBytes:
		f.Bytes, err = d.ReadBytes()
		if err == nil {
			w.classify(&f, depth)
		}
	default:
		err = fmt.Errorf("%w: %d", wire.ErrUnsupportedWireType, f.WireType)
	}
	return f, err
}

// classify decides whether a payload is an embedded message or a string.
// A payload that parses completely as a message wins.
func (w walker) classify(f *Field, depth int) {
	if len(f.Bytes) > 0 && depth < w.maxDepth {
		sub := wire.NewDecoder(f.Bytes)
		if msg, err := w.fields(sub, sub.Len(), depth+1); err == nil {
			f.Message = msg
			return
		}
	}
	if utf8.Valid(f.Bytes) {
		s := string(f.Bytes)
		f.String = &s
	}
}

// Value returns the field's value as a plain Go value: uint64 for varint and
// fixed64, uint32 for fixed32, a map for embedded messages, a string for text
// and []byte otherwise.
func (f Field) Value() interface{} {
	switch f.WireType {
	case wire.WireVarint:
		return f.Varint
	case wire.WireFixed64:
		return f.Fixed64
	case wire.WireFixed32:
		return f.Fixed32
	}
	switch {
	case f.Message != nil:
		return f.Message.Map()
	case f.String != nil:
		return *f.String
	default:
		return f.Bytes
	}
}

// Kind names the interpretation Value uses.
func (f Field) Kind() string {
	if f.WireType != wire.WireBytes {
		return f.WireType.String()
	}
	switch {
	case f.Message != nil:
		return "message"
	case f.String != nil:
		return "string"
	default:
		return "bytes"
	}
}

// Map converts fields to a tree keyed "field_N". Each entry holds a
// {"type", "value"} pair; fields that repeat hold a list of pairs in wire
// order.
func (fs Fields) Map() map[string]interface{} {
	result := make(map[string]interface{}, len(fs))
	for _, f := range fs {
		key := fmt.Sprintf("field_%d", f.Number)
		entry := map[string]interface{}{
			"type":  f.Kind(),
			"value": f.Value(),
		}

		switch prev := result[key].(type) {
		case nil:
			result[key] = entry
		case []interface{}:
			result[key] = append(prev, entry)
		default:
			result[key] = []interface{}{prev, entry}
		}
	}
	return result
}
