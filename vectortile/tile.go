// Package vectortile reads and writes Mapbox Vector Tiles with hand-written
// field functions.
package vectortile

import (
	"fmt"

	"github.com/anirudhraja/pbf"
)

// Layer defaults that are not written to the wire.
const (
	DefaultVersion = 1
	DefaultExtent  = 4096
)

// GeomType is the geometry type of a feature.
type GeomType uint64

const (
	Unknown GeomType = iota
	Point
	LineString
	Polygon
)

func (g GeomType) String() string {
	switch g {
	case Unknown:
		return "unknown"
	case Point:
		return "point"
	case LineString:
		return "linestring"
	case Polygon:
		return "polygon"
	default:
		return fmt.Sprintf("geomtype(%d)", uint64(g))
	}
}

// Tile is a set of named layers.
type Tile struct {
	Layers []*Layer
}

// Layer holds features sharing a key/value dictionary.
type Layer struct {
	Version  uint64
	Name     string
	Features []*Feature
	Keys     []string
	Values   []*Value
	Extent   uint64
}

// Feature is one geometry with tags indexing into its layer's keys and values.
type Feature struct {
	ID       uint64
	Tags     []uint64
	Type     GeomType
	Geometry []uint64
}

// Value is a tagged attribute value. Zero members are not written.
type Value struct {
	String string
	Float  float32
	Double float64
	Int    int64
	Uint   uint64
	SInt   int64
	Bool   bool
}

// NewLayer returns a layer with the default version and extent.
func NewLayer(name string) *Layer {
	return &Layer{Version: DefaultVersion, Name: name, Extent: DefaultExtent}
}

// ReadTile decodes a tile.
func ReadTile(data []byte) (*Tile, error) {
	t := &Tile{}
	if err := pbf.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Marshal encodes the tile.
func (t *Tile) Marshal() ([]byte, error) {
	return pbf.Marshal(t)
}

// LayerNames returns the layer names in wire order.
func (t *Tile) LayerNames() []string {
	names := make([]string, len(t.Layers))
	for i, l := range t.Layers {
		names[i] = l.Name
	}
	return names
}

// Layer returns the first layer called name, or nil.
func (t *Tile) Layer(name string) *Layer {
	for _, l := range t.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Properties resolves a feature's tags against the layer dictionary.
func (l *Layer) Properties(f *Feature) (map[string]*Value, error) {
	if len(f.Tags)%2 != 0 {
		return nil, fmt.Errorf("feature %d: odd number of tags", f.ID)
	}

	props := make(map[string]*Value, len(f.Tags)/2)
	for i := 0; i < len(f.Tags); i += 2 {
		k, v := f.Tags[i], f.Tags[i+1]
		if k >= uint64(len(l.Keys)) {
			return nil, fmt.Errorf("feature %d: key index %d out of range", f.ID, k)
		}
		if v >= uint64(len(l.Values)) {
			return nil, fmt.Errorf("feature %d: value index %d out of range", f.ID, v)
		}
		props[l.Keys[k]] = l.Values[v]
	}
	return props, nil
}

// Interface returns the member that is set, or nil when none is.
func (v *Value) Interface() interface{} {
	switch {
	case v.String != "":
		return v.String
	case v.Float != 0:
		return v.Float
	case v.Double != 0:
		return v.Double
	case v.Int != 0:
		return v.Int
	case v.Uint != 0:
		return v.Uint
	case v.SInt != 0:
		return v.SInt
	case v.Bool:
		return true
	}
	return nil
}
