package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/anirudhraja/pbf/internal/payload"
	"github.com/anirudhraja/pbf/vectortile"
	"github.com/anirudhraja/pbf/wire"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.pbf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func sampleMessage() []byte {
	e := wire.NewEncoder()
	e.WriteVarintField(1, 150)
	e.WriteStringField(2, "hello")
	return e.Finish().Data()
}

func sampleTile(t *testing.T) []byte {
	t.Helper()
	roads := vectortile.NewLayer("roads")
	roads.Keys = []string{"name"}
	roads.Values = []*vectortile.Value{{String: "Main St"}}
	roads.Features = []*vectortile.Feature{
		{ID: 1, Tags: []uint64{0, 0}, Type: vectortile.LineString, Geometry: []uint64{9, 2, 2, 10, 4, 4}},
	}
	data, err := (&vectortile.Tile{Layers: []*vectortile.Layer{roads}}).Marshal()
	require.NoError(t, err)
	return data
}

func runCLI(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Text(t *testing.T) {
	out, _, err := runCLI(t, nil, writeTemp(t, sampleMessage()))
	require.NoError(t, err)
	assert.Equal(t, "1: 150\n2: \"hello\"\n", out)
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := runCLI(t, sampleMessage(), "-")
	require.NoError(t, err)
	assert.Contains(t, out, "1: 150")
}

func TestRun_Compressed(t *testing.T) {
	for _, c := range []payload.Compression{payload.Gzip, payload.Zstd, payload.LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := payload.Encode(sampleMessage(), c)
			require.NoError(t, err)

			out, logs, err := runCLI(t, nil, "--verbose", writeTemp(t, data))
			require.NoError(t, err)
			assert.Equal(t, "1: 150\n2: \"hello\"\n", out)
			assert.Contains(t, logs, "compression="+c.String())
		})
	}
}

func TestRun_StructuredFormats(t *testing.T) {
	path := writeTemp(t, sampleMessage())

	out, _, err := runCLI(t, nil, "--format", "json", path)
	require.NoError(t, err)
	var fromJSON map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, "varint", fromJSON["field_1"]["type"])
	assert.Equal(t, "hello", fromJSON["field_2"]["value"])

	out, _, err = runCLI(t, nil, "-f", "yaml", path)
	require.NoError(t, err)
	var fromYAML map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, 150, fromYAML["field_1"]["value"])

	out, _, err = runCLI(t, nil, "--format=cbor", path)
	require.NoError(t, err)
	var fromCBOR map[string]map[string]interface{}
	require.NoError(t, cbor.Unmarshal([]byte(out), &fromCBOR))
	assert.Equal(t, uint64(150), fromCBOR["field_1"]["value"])
}

func TestRun_Tile(t *testing.T) {
	data, err := payload.Encode(sampleTile(t), payload.Gzip)
	require.NoError(t, err)
	path := writeTemp(t, data)

	out, _, err := runCLI(t, nil, "--tile", path)
	require.NoError(t, err)
	assert.Equal(t, "layer \"roads\": version=1 extent=4096 features=1 keys=1 values=1\n", out)

	out, _, err = runCLI(t, nil, "--tile", "--format", "json", path)
	require.NoError(t, err)
	var layers []layerSummary
	require.NoError(t, json.Unmarshal([]byte(out), &layers))
	require.Len(t, layers, 1)
	assert.Equal(t, map[string]int{"linestring": 1}, layers[0].Geometry)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t, nil)
	require.Error(t, err)

	_, _, err = runCLI(t, nil, "--format", "xml", "-")
	require.ErrorContains(t, err, "unknown format")

	_, _, err = runCLI(t, nil, filepath.Join(t.TempDir(), "missing.pbf"))
	require.ErrorContains(t, err, "reading input")

	_, _, err = runCLI(t, []byte{0x0a, 0x05}, "-")
	require.ErrorIs(t, err, wire.ErrUnexpectedEOF)

	_, _, err = runCLI(t, nil, "--bogus")
	require.ErrorContains(t, err, "unknown flag")
}
