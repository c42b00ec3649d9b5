package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/anirudhraja/pbf"
	"github.com/anirudhraja/pbf/internal/payload"
	"github.com/anirudhraja/pbf/vectortile"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(); err != nil {
		logger.Error("sample app failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("🚀 pbf Sample App - hand-written vector tile codec")
	fmt.Println(strings.Repeat("=", 70))

	tile := createSampleTile()

	// Step 1: encode
	fmt.Println("\n📤 Step 1: Marshal tile...")
	data, err := tile.Marshal()
	if err != nil {
		return fmt.Errorf("marshal tile: %w", err)
	}
	fmt.Printf("✅ Marshaled %d bytes\n", len(data))
	fmt.Printf("   First 32 bytes: %s\n", hex.EncodeToString(data[:min(32, len(data))]))

	// Step 2: decode
	fmt.Println("\n📥 Step 2: Read tile back...")
	decoded, err := vectortile.ReadTile(data)
	if err != nil {
		return fmt.Errorf("read tile: %w", err)
	}
	for _, l := range decoded.Layers {
		fmt.Printf("✅ Layer %q: %d features, extent %d\n", l.Name, len(l.Features), l.Extent)
		for _, f := range l.Features {
			props, err := l.Properties(f)
			if err != nil {
				return err
			}
			fmt.Printf("   • feature %d (%s):", f.ID, f.Type)
			for _, k := range l.Keys {
				if v, ok := props[k]; ok {
					fmt.Printf(" %s=%v", k, v.Interface())
				}
			}
			fmt.Println()
		}
	}

	// Step 3: round trip
	fmt.Println("\n🔄 Step 3: Round-trip comparison...")
	again, err := decoded.Marshal()
	if err != nil {
		return fmt.Errorf("re-marshal tile: %w", err)
	}
	fmt.Printf("   Identical bytes: %v\n", string(again) == string(data))

	// Step 4: schema-less view
	fmt.Println("\n🔍 Step 4: Schema-less parse...")
	fields, err := pbf.Parse(data)
	if err != nil {
		return fmt.Errorf("parse tile: %w", err)
	}
	fmt.Printf("   Top-level fields: %d\n", len(fields))

	// Step 5: compressed transport
	fmt.Println("\n📦 Step 5: Compressed sizes...")
	for _, c := range []payload.Compression{payload.Gzip, payload.Zstd, payload.LZ4} {
		packed, err := payload.Encode(data, c)
		if err != nil {
			return fmt.Errorf("compress with %s: %w", c, err)
		}
		fmt.Printf("   %-5s %d bytes\n", c, len(packed))
	}

	fmt.Println("\n🎉 Sample app complete!")
	return nil
}

func createSampleTile() *vectortile.Tile {
	roads := vectortile.NewLayer("roads")
	roads.Keys = []string{"name", "lanes", "oneway"}
	roads.Values = []*vectortile.Value{
		{String: "Market Street"},
		{Uint: 4},
		{Bool: true},
		{String: "Привет 李小龙"},
		{Uint: 2},
	}
	roads.Features = []*vectortile.Feature{
		{ID: 1, Type: vectortile.LineString, Tags: []uint64{0, 0, 1, 1, 2, 2}, Geometry: []uint64{9, 50, 34, 18, 20, 0, 0, 20}},
		{ID: 2, Type: vectortile.LineString, Tags: []uint64{0, 3, 1, 4}, Geometry: []uint64{9, 10, 10, 10, 6, 6}},
	}

	pois := vectortile.NewLayer("poi")
	pois.Keys = []string{"name", "elevation"}
	pois.Values = []*vectortile.Value{
		{String: "Twin Peaks"},
		{SInt: 282},
		{String: "Dead Sea"},
		{SInt: -430},
	}
	pois.Features = []*vectortile.Feature{
		{ID: 10, Type: vectortile.Point, Tags: []uint64{0, 0, 1, 1}, Geometry: []uint64{9, 1200, 3400}},
		{ID: 11, Type: vectortile.Point, Tags: []uint64{0, 2, 1, 3}, Geometry: []uint64{9, 64, 128}},
	}

	return &vectortile.Tile{Layers: []*vectortile.Layer{roads, pois}}
}
