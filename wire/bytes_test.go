package wire

import (
	"strings"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestString_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "hello"},
		{"cyrillic_cjk", "Привет 李小龙"},
		{"emoji", "a😀b"},
		{"long", strings.Repeat("x", 200) + "李"},
		{"over_16k", strings.Repeat("ab", 9000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder()
			e.WriteString(tt.in)
			assert.Equal(t, protowire.AppendString(nil, tt.in), e.Bytes())
			assert.Equal(t, StringSize(tt.in), e.Len())

			got, err := e.Finish().ReadString()
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestString_Bytes(t *testing.T) {
	e := NewEncoder()
	e.WriteString("Привет 李小龙")
	b := e.Bytes()
	require.Len(t, b, 23)
	assert.Equal(t, byte(22), b[0])
	assert.Equal(t, []byte("Привет 李小龙"), b[1:])
}

func TestWriteString_InvalidBytesReplaced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stray_continuation", "a\x80b", "a�b"},
		{"invalid_lead", "\xff", "�"},
		{"encoded_surrogate", "\xed\xa0\x80", "���"},
		{"truncated_tail", "ok\xe4\xb8", "ok��"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder()
			e.WriteString(tt.in)
			assert.Equal(t, StringSize(tt.in), e.Len())

			got, err := e.Finish().ReadString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadString_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"lone_continuation", []byte{0x61, 0x80, 0x62}, "a�b"},
		{"overlong_nul", []byte{0xc0, 0x80}, "��"},
		{"truncated_three_byte", []byte{0xe4, 0xb8}, "��"},
		{"surrogate_half", []byte{0xed, 0xb0, 0x80}, "���"},
		{"above_max_rune", []byte{0xf4, 0x90, 0x80, 0x80}, "����"},
		{"invalid_then_valid", []byte{0xff, 0xe6, 0x9d, 0x8e}, "�李"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := protowire.AppendBytes(nil, tt.payload)
			got, err := NewDecoder(data).ReadString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestReadString_FastPathMatchesSlowPath(t *testing.T) {
	prev := CurrentConfig()
	t.Cleanup(func() { SetConfig(prev) })

	inputs := [][]byte{
		[]byte("short"),
		[]byte("a string long enough for the fast path"),
		[]byte(strings.Repeat("Привет 李小龙 ", 10)),
		append([]byte(strings.Repeat("z", 40)), 0xff, 0x41),
	}

	for _, in := range inputs {
		SetConfig(Config{FastStringMinLength: 1})
		fast := decodeUTF8(in)
		SetConfig(Config{FastStringMinLength: 1 << 30})
		slow := decodeUTF8(in)
		assert.Equal(t, slow, fast, "input %q", in)
	}
}

func TestUTF16String(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{"empty", nil},
		{"ascii", utf16.Encode([]rune("hello"))},
		{"bmp", utf16.Encode([]rune("Привет 李小龙"))},
		{"surrogate_pair", utf16.Encode([]rune("x😀y"))},
		{"lone_high", []uint16{'a', 0xd83d, 'b'}},
		{"lone_low", []uint16{0xde00, 'a'}},
		{"trailing_high", []uint16{'a', 0xd83d}},
		{"reversed_pair", []uint16{0xde00, 0xd83d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder()
			e.WriteUTF16String(tt.units)

			want := string(utf16.Decode(tt.units))
			assert.Equal(t, protowire.AppendString(nil, want), e.Bytes())

			got, err := e.Finish().ReadUTF16String()
			require.NoError(t, err)
			assert.Equal(t, utf16.Encode(utf16.Decode(tt.units)), got)
		})
	}
}

func TestBytes(t *testing.T) {
	payload := []byte{1, 2, 3, 0, 255}
	e := NewEncoder()
	e.WriteBytes(payload)
	e.WriteBytes(nil)
	assert.Equal(t, BytesSize(payload)+BytesSize(nil), e.Len())

	data := e.Finish()
	got, err := data.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, len(got), cap(got), "result must not expose bytes past the field")

	got, err = data.ReadBytes()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, data.Done())
}

func TestReadBytes_Truncated(t *testing.T) {
	d := NewDecoder([]byte{0x05, 1, 2})
	_, err := d.ReadBytes()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}
