// Package payload detects and undoes the compression that protobuf files
// commonly travel in (gzip-wrapped vector tiles, zstd or lz4 archives).
package payload

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a container format by its magic number.
type Compression uint8

const (
	None Compression = iota
	Gzip
	Zstd
	LZ4
)

// MaxDecodedSize caps decompressed output.
const MaxDecodedSize = 1 << 30

// ErrTooLarge is returned when decompressed data exceeds MaxDecodedSize.
var ErrTooLarge = errors.New("decompressed payload too large")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the human-readable name of a compression.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression from its string representation.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "":
		return None, nil
	case "gzip":
		return Gzip, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("unknown compression: %q", name)
	}
}

// Detect sniffs the magic number at the start of data.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// Decode decompresses data according to its magic number. Data without a
// known magic number is returned unchanged.
func Decode(data []byte) ([]byte, Compression, error) {
	c := Detect(data)

	var r io.Reader
	switch c {
	case None:
		return data, None, nil
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, c, fmt.Errorf("gzip decompress: %w", err)
		}
		defer zr.Close()
		r = zr
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(MaxDecodedSize))
		if err != nil {
			return nil, c, fmt.Errorf("zstd decompress: %w", err)
		}
		defer zr.Close()
		r = zr
	case LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	}

	out, err := io.ReadAll(io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return nil, c, fmt.Errorf("%s decompress: %w", c, err)
	}
	if len(out) > MaxDecodedSize {
		return nil, c, fmt.Errorf("%s decompress: %w", c, ErrTooLarge)
	}
	return out, c, nil
}

// Encode compresses data with c.
func Encode(data []byte, c Compression) ([]byte, error) {
	if c == None {
		return data, nil
	}

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case Gzip:
		w = gzip.NewWriter(&buf)
	case Zstd:
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		w = zw
	case LZ4:
		w = lz4.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	return buf.Bytes(), nil
}
