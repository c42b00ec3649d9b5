package vectortile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/pbf/wire"
)

func sampleTile() *Tile {
	roads := NewLayer("roads")
	roads.Keys = []string{"name", "lanes", "oneway"}
	roads.Values = []*Value{
		{String: "Main St"},
		{Uint: 2},
		{Bool: true},
		{SInt: -40},
		{Double: 12.5},
		{Float: 0.5},
		{Int: -3000},
	}
	roads.Features = []*Feature{
		{ID: 1, Tags: []uint64{0, 0, 1, 1}, Type: LineString, Geometry: []uint64{9, 50, 34, 18, 20, 0}},
		{ID: 2, Tags: []uint64{0, 0, 2, 2}, Type: Point, Geometry: []uint64{9, 2, 2}},
	}

	water := NewLayer("water")
	water.Version = 2
	water.Extent = 512
	water.Features = []*Feature{{Type: Polygon, Geometry: []uint64{9, 0, 0, 26, 20, 0, 0, 20, 19, 0, 15}}}

	return &Tile{Layers: []*Layer{roads, water}}
}

func TestTile_RoundTrip(t *testing.T) {
	src := sampleTile()
	data, err := src.Marshal()
	require.NoError(t, err)

	got, err := ReadTile(data)
	require.NoError(t, err)
	assert.Equal(t, src, got)
	assert.Equal(t, []string{"roads", "water"}, got.LayerNames())
}

func TestLayer_DefaultsOmitted(t *testing.T) {
	e := wire.NewEncoder()
	require.NoError(t, NewLayer("x").WriteFields(e))

	want := protowire.AppendString(protowire.AppendTag(nil, layerName, protowire.BytesType), "x")
	assert.Equal(t, want, e.Bytes())

	l := &Layer{Version: 2, Extent: 256}
	e = wire.NewEncoder()
	require.NoError(t, l.WriteFields(e))
	want = protowire.AppendVarint(protowire.AppendTag(nil, layerVersion, protowire.VarintType), 2)
	want = protowire.AppendVarint(protowire.AppendTag(want, layerExtent, protowire.VarintType), 256)
	assert.Equal(t, want, e.Bytes())
}

func TestReadTile_Defaults(t *testing.T) {
	e := wire.NewEncoder()
	require.NoError(t, wire.WriteMessage(e, tileLayers, func(name string, e *wire.Encoder) error {
		e.WriteStringField(layerName, name)
		return nil
	}, "bare"))

	tile, err := ReadTile(e.Bytes())
	require.NoError(t, err)
	require.Len(t, tile.Layers, 1)
	assert.Equal(t, uint64(DefaultVersion), tile.Layers[0].Version)
	assert.Equal(t, uint64(DefaultExtent), tile.Layers[0].Extent)
}

func TestReadTile_UnpackedTagsAndUnknownFields(t *testing.T) {
	writeFeature := func(_ int, e *wire.Encoder) error {
		e.WriteVarintField(featureTags, 0)
		e.WriteStringField(99, "ignored")
		e.WriteVarintField(featureTags, 1)
		e.WritePackedVarint(featureGeometry, []uint64{9, 2, 2})
		return nil
	}
	writeLayer := func(_ int, e *wire.Encoder) error {
		e.WriteStringField(layerName, "poi")
		e.WriteFixed32Field(42, 7)
		return wire.WriteMessage(e, layerFeatures, writeFeature, 0)
	}

	e := wire.NewEncoder()
	e.WriteFixed64Field(1, 123)
	require.NoError(t, wire.WriteMessage(e, tileLayers, writeLayer, 0))

	tile, err := ReadTile(e.Bytes())
	require.NoError(t, err)
	require.Len(t, tile.Layers, 1)
	f := tile.Layers[0].Features[0]
	assert.Equal(t, []uint64{0, 1}, f.Tags)
	assert.Equal(t, []uint64{9, 2, 2}, f.Geometry)
}

func TestReadTile_Truncated(t *testing.T) {
	data, err := sampleTile().Marshal()
	require.NoError(t, err)

	_, err = ReadTile(data[:len(data)-3])
	require.ErrorIs(t, err, wire.ErrUnexpectedEOF)

	var fe *wire.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, wire.FieldNumber(tileLayers), fe.FieldPath[0])
}

func TestLayer_Properties(t *testing.T) {
	tile := sampleTile()
	roads := tile.Layer("roads")
	require.NotNil(t, roads)

	props, err := roads.Properties(roads.Features[0])
	require.NoError(t, err)
	assert.Equal(t, "Main St", props["name"].Interface())
	assert.Equal(t, uint64(2), props["lanes"].Interface())

	_, err = roads.Properties(&Feature{Tags: []uint64{0}})
	require.Error(t, err)
	_, err = roads.Properties(&Feature{Tags: []uint64{7, 0}})
	require.Error(t, err)
	_, err = roads.Properties(&Feature{Tags: []uint64{0, 70}})
	require.Error(t, err)

	assert.Nil(t, tile.Layer("missing"))
}

func TestValue_Interface(t *testing.T) {
	tests := []struct {
		value Value
		want  interface{}
	}{
		{Value{String: "a"}, "a"},
		{Value{Float: 1.5}, float32(1.5)},
		{Value{Double: 2.5}, 2.5},
		{Value{Int: -1}, int64(-1)},
		{Value{Uint: 3}, uint64(3)},
		{Value{SInt: -4}, int64(-4)},
		{Value{Bool: true}, true},
		{Value{}, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.Interface())
	}
}

func TestGeomType_String(t *testing.T) {
	assert.Equal(t, "polygon", Polygon.String())
	assert.Equal(t, "geomtype(9)", GeomType(9).String())
}

func BenchmarkTile(b *testing.B) {
	src := sampleTile()
	data, err := src.Marshal()
	require.NoError(b, err)

	b.Run("marshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := src.Marshal(); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("unmarshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := ReadTile(data); err != nil {
				b.Fatal(err)
			}
		}
	})
}
