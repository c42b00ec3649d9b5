package vectortile

import (
	"github.com/anirudhraja/pbf"
	"github.com/anirudhraja/pbf/wire"
)

// Field numbers from vector_tile.proto.
const (
	tileLayers = 3

	layerName     = 1
	layerFeatures = 2
	layerKeys     = 3
	layerValues   = 4
	layerExtent   = 5
	layerVersion  = 15

	featureID       = 1
	featureTags     = 2
	featureType     = 3
	featureGeometry = 4

	valueString = 1
	valueFloat  = 2
	valueDouble = 3
	valueInt    = 4
	valueUint   = 5
	valueSInt   = 6
	valueBool   = 7
)

// TILE

func (t *Tile) ReadField(num wire.FieldNumber, d *wire.Decoder) error {
	if num == tileLayers {
		l := NewLayer("")
		if err := pbf.ReadMessage(d, l); err != nil {
			return err
		}
		t.Layers = append(t.Layers, l)
	}
	return nil
}

func (t *Tile) WriteFields(e *wire.Encoder) error {
	for _, l := range t.Layers {
		if err := pbf.WriteMessage(e, tileLayers, l); err != nil {
			return err
		}
	}
	return nil
}

// LAYER

func (l *Layer) ReadField(num wire.FieldNumber, d *wire.Decoder) error {
	var err error
	switch num {
	case layerVersion:
		l.Version, err = d.ReadVarint()
	case layerName:
		l.Name, err = d.ReadString()
	case layerFeatures:
		f := &Feature{}
		if err = pbf.ReadMessage(d, f); err == nil {
			l.Features = append(l.Features, f)
		}
	case layerKeys:
		var k string
		if k, err = d.ReadString(); err == nil {
			l.Keys = append(l.Keys, k)
		}
	case layerValues:
		v := &Value{}
		if err = pbf.ReadMessage(d, v); err == nil {
			l.Values = append(l.Values, v)
		}
	case layerExtent:
		l.Extent, err = d.ReadVarint()
	}
	return err
}

func (l *Layer) WriteFields(e *wire.Encoder) error {
	if l.Version != DefaultVersion {
		e.WriteVarintField(layerVersion, l.Version)
	}
	if l.Name != "" {
		e.WriteStringField(layerName, l.Name)
	}
	for _, f := range l.Features {
		if err := pbf.WriteMessage(e, layerFeatures, f); err != nil {
			return err
		}
	}
	for _, k := range l.Keys {
		e.WriteStringField(layerKeys, k)
	}
	for _, v := range l.Values {
		if err := pbf.WriteMessage(e, layerValues, v); err != nil {
			return err
		}
	}
	if l.Extent != DefaultExtent {
		e.WriteVarintField(layerExtent, l.Extent)
	}
	return nil
}

// FEATURE

func (f *Feature) ReadField(num wire.FieldNumber, d *wire.Decoder) error {
	var err error
	switch num {
	case featureID:
		f.ID, err = d.ReadVarint()
	case featureTags:
		f.Tags, err = d.ReadPackedVarint(f.Tags)
	case featureType:
		var v uint64
		v, err = d.ReadVarint()
		f.Type = GeomType(v)
	case featureGeometry:
		f.Geometry, err = d.ReadPackedVarint(f.Geometry)
	}
	return err
}

func (f *Feature) WriteFields(e *wire.Encoder) error {
	if f.ID != 0 {
		e.WriteVarintField(featureID, f.ID)
	}
	e.WritePackedVarint(featureTags, f.Tags)
	if f.Type != Unknown {
		e.WriteVarintField(featureType, uint64(f.Type))
	}
	e.WritePackedVarint(featureGeometry, f.Geometry)
	return nil
}

// VALUE

func (v *Value) ReadField(num wire.FieldNumber, d *wire.Decoder) error {
	var err error
	switch num {
	case valueString:
		v.String, err = d.ReadString()
	case valueFloat:
		v.Float, err = d.ReadFloat()
	case valueDouble:
		v.Double, err = d.ReadDouble()
	case valueInt:
		v.Int, err = d.ReadVarint64()
	case valueUint:
		v.Uint, err = d.ReadVarint()
	case valueSInt:
		v.SInt, err = d.ReadSVarint()
	case valueBool:
		v.Bool, err = d.ReadBoolean()
	}
	return err
}

func (v *Value) WriteFields(e *wire.Encoder) error {
	if v.String != "" {
		e.WriteStringField(valueString, v.String)
	}
	if v.Float != 0 {
		e.WriteFloatField(valueFloat, v.Float)
	}
	if v.Double != 0 {
		e.WriteDoubleField(valueDouble, v.Double)
	}
	if v.Int != 0 {
		e.WriteVarint64Field(valueInt, v.Int)
	}
	if v.Uint != 0 {
		e.WriteVarintField(valueUint, v.Uint)
	}
	if v.SInt != 0 {
		e.WriteSVarintField(valueSInt, v.SInt)
	}
	if v.Bool {
		e.WriteBooleanField(valueBool, v.Bool)
	}
	return nil
}
