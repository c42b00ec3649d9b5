package wire

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// replacement is U+FFFD encoded as UTF-8.
const replacement = "\uFFFD"

// writeUTF8 copies s into buf at pos and returns the new position. Every byte
// that is not part of a valid UTF-8 sequence (encoded surrogate halves
// included) is replaced with U+FFFD, so buf needs room for 3*len(s) bytes in
// the worst case.
func writeUTF8(buf []byte, pos int, s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			buf[pos] = c
			pos++
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			pos += copy(buf[pos:], replacement)
			i++
			continue
		}
		pos += copy(buf[pos:], s[i:i+size])
		i += size
	}
	return pos
}

// writeUTF16 encodes UTF-16 code units into buf at pos. Surrogate pairs are
// combined into one 4-byte sequence; unpaired halves become U+FFFD. buf needs
// room for 3*len(units) bytes.
func writeUTF16(buf []byte, pos int, units []uint16) int {
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if r < 0xdc00 && i+1 < len(units) && units[i+1] >= 0xdc00 && units[i+1] <= 0xdfff {
				r = utf16.DecodeRune(r, rune(units[i+1]))
				i++
			} else {
				r = utf8.RuneError
			}
		}
		pos += utf8.EncodeRune(buf[pos:], r)
	}
	return pos
}

// decodeUTF8 converts b to a string, replacing each byte of an invalid,
// truncated, overlong, surrogate or out-of-range sequence with U+FFFD.
func decodeUTF8(b []byte) string {
	if len(b) >= config.FastStringMinLength && utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(replacement)
			i++
			continue
		}
		sb.Write(b[i : i+size])
		i += size
	}
	return sb.String()
}

// decodeUTF16 converts b to UTF-16 code units with the same replacement rules
// as decodeUTF8. Code points above U+FFFF become surrogate pairs.
func decodeUTF16(b []byte) []uint16 {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			units = append(units, uint16(c))
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}
