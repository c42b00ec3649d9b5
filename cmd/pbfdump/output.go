package main

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/anirudhraja/pbf/inspect"
	"github.com/anirudhraja/pbf/vectortile"
)

type format int

const (
	formatText format = iota
	formatJSON
	formatYAML
	formatCBOR
)

func parseFormat(name string) (format, error) {
	switch name {
	case "text":
		return formatText, nil
	case "json":
		return formatJSON, nil
	case "yaml":
		return formatYAML, nil
	case "cbor":
		return formatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want text, json, yaml or cbor)", name)
	}
}

// layerSummary is the per-layer report printed for --tile.
type layerSummary struct {
	Name     string         `json:"name" yaml:"name" cbor:"name"`
	Version  uint64         `json:"version" yaml:"version" cbor:"version"`
	Extent   uint64         `json:"extent" yaml:"extent" cbor:"extent"`
	Features int            `json:"features" yaml:"features" cbor:"features"`
	Keys     []string       `json:"keys" yaml:"keys" cbor:"keys"`
	Values   int            `json:"values" yaml:"values" cbor:"values"`
	Geometry map[string]int `json:"geometry" yaml:"geometry" cbor:"geometry"`
}

func summarize(tile *vectortile.Tile) []layerSummary {
	out := make([]layerSummary, 0, len(tile.Layers))
	for _, l := range tile.Layers {
		s := layerSummary{
			Name:     l.Name,
			Version:  l.Version,
			Extent:   l.Extent,
			Features: len(l.Features),
			Keys:     l.Keys,
			Values:   len(l.Values),
			Geometry: map[string]int{},
		}
		if s.Keys == nil {
			s.Keys = []string{}
		}
		for _, f := range l.Features {
			s.Geometry[f.Type.String()]++
		}
		out = append(out, s)
	}
	return out
}

func writeTile(w io.Writer, f format, tile *vectortile.Tile) error {
	layers := summarize(tile)
	if f != formatText {
		return encode(w, f, layers)
	}

	for _, l := range layers {
		if _, err := fmt.Fprintf(w, "layer %q: version=%d extent=%d features=%d keys=%d values=%d\n",
			l.Name, l.Version, l.Extent, l.Features, len(l.Keys), l.Values); err != nil {
			return err
		}
	}
	return nil
}

func writeFields(w io.Writer, f format, fields inspect.Fields) error {
	if f == formatText {
		return inspect.WriteText(w, fields)
	}
	return encode(w, f, fields.Map())
}

func encode(w io.Writer, f format, v interface{}) error {
	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %d is not structured", f)
	}
}
