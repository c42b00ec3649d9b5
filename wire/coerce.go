package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// coerceVarint converts a loosely typed number to the 64 bits written on the
// wire. Negative values become their two's complement. Anything that is not a
// number (unparseable strings, NaN, unknown types) coerces to 0.
func coerceVarint(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case int:
		return uint64(int64(t)), nil
	case int8:
		return uint64(int64(t)), nil
	case int16:
		return uint64(int64(t)), nil
	case int32:
		return uint64(int64(t)), nil
	case int64:
		return uint64(t), nil
	case uint:
		return uint64(t), nil
	case uint8:
		return uint64(t), nil
	case uint16:
		return uint64(t), nil
	case uint32:
		return uint64(t), nil
	case uint64:
		return t, nil
	case float32:
		return coerceFloat(float64(t))
	case float64:
		return coerceFloat(t)
	case json.Number:
		return coerceString(t.String())
	case string:
		return coerceString(t)
	case *big.Int:
		if t == nil {
			return 0, nil
		}
		if t.IsInt64() {
			return uint64(t.Int64()), nil
		}
		if t.IsUint64() {
			return t.Uint64(), nil
		}
		return 0, fmt.Errorf("%w: %s", ErrValueOutOfRange, t.String())
	default:
		return 0, nil
	}
}

// coerceString parses decimal integers exactly and falls back to float
// parsing for exponent/fraction forms.
func coerceString(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint64(iv), nil
	}
	if uv, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uv, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrValueOutOfRange, s)
	}
	if err != nil {
		return 0, nil
	}
	return coerceFloat(f)
}

// coerceFloat truncates toward zero.
func coerceFloat(f float64) (uint64, error) {
	if math.IsNaN(f) {
		return 0, nil
	}
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrValueOutOfRange, f)
	}

	t := math.Trunc(f)
	if t >= 0x1p64 || t < -0x1p63 {
		return 0, fmt.Errorf("%w: %v", ErrValueOutOfRange, f)
	}
	if t >= 0x1p63 {
		return uint64(t), nil
	}
	return uint64(int64(t)), nil
}
