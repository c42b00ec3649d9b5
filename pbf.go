// Package pbf reads and writes Protocol Buffers messages without generated
// code. Message types implement Marshaler and Unmarshaler with hand-written
// field functions over the wire package.
package pbf

import (
	"fmt"

	"github.com/anirudhraja/pbf/inspect"
	"github.com/anirudhraja/pbf/wire"
)

// Marshaler is implemented by messages that can write their own fields.
type Marshaler interface {
	WriteFields(e *wire.Encoder) error
}

// Unmarshaler is implemented by messages that can read their own fields.
// ReadField is called once per field on the wire; fields it does not consume
// are skipped.
type Unmarshaler interface {
	ReadField(num wire.FieldNumber, d *wire.Decoder) error
}

// Marshal encodes m into a new byte slice.
func Marshal(m Marshaler) ([]byte, error) {
	return MarshalAppend(nil, m)
}

// MarshalAppend encodes m and appends the result to dst.
func MarshalAppend(dst []byte, m Marshaler) ([]byte, error) {
	e := wire.NewEncoder()
	if err := m.WriteFields(e); err != nil {
		return dst, fmt.Errorf("failed to marshal: %w", err)
	}
	if dst == nil {
		return e.Finish().Data(), nil
	}
	return append(dst, e.Bytes()...), nil
}

// Unmarshal decodes data into m.
func Unmarshal(data []byte, m Unmarshaler) error {
	d := wire.NewDecoder(data)
	if _, err := wire.ReadFields(d, readField, m, d.Len()); err != nil {
		return fmt.Errorf("failed to unmarshal: %w", err)
	}
	return nil
}

// WriteMessage writes m as an embedded message field.
func WriteMessage(e *wire.Encoder, num wire.FieldNumber, m Marshaler) error {
	return wire.WriteMessage(e, num, writeFields, m)
}

// ReadMessage reads an embedded message at the decoder's position into m.
// It is meant to be called from a ReadField implementation.
func ReadMessage(d *wire.Decoder, m Unmarshaler) error {
	_, err := wire.ReadMessage(d, readField, m)
	return err
}

// Parse decodes data without a schema. Each key is "field_N" and maps to a
// {"type", "value"} pair, or to a list of them when the field repeats.
func Parse(data []byte) (map[string]interface{}, error) {
	fields, err := inspect.Decode(data, inspect.Options{})
	if err != nil {
		return nil, err
	}
	return fields.Map(), nil
}

func writeFields(m Marshaler, e *wire.Encoder) error {
	return m.WriteFields(e)
}

func readField(num wire.FieldNumber, m Unmarshaler, d *wire.Decoder) error {
	return m.ReadField(num, d)
}
