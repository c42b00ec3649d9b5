// pbfdump prints the contents of a protobuf file without a schema.
//
// The input may be gzip, zstd or lz4 compressed; the format is detected from
// its magic number. By default every field is printed in the layout of
// protoc --decode_raw. With --tile the input is decoded as a Mapbox Vector
// Tile and a summary of each layer is printed instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/anirudhraja/pbf/inspect"
	"github.com/anirudhraja/pbf/internal/payload"
	"github.com/anirudhraja/pbf/vectortile"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	format   string
	tile     bool
	maxDepth int
	verbose  bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("pbfdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.format, "format", "f", "text", "output format: text, json, yaml or cbor")
	flagSet.BoolVar(&opts.tile, "tile", false, "decode the input as a vector tile")
	flagSet.IntVar(&opts.maxDepth, "max-depth", inspect.DefaultMaxDepth, "deepest nesting probed for embedded messages")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log decoding details to stderr")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pbfdump [flags] FILE|-\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("expected exactly one input, got %d", flagSet.NArg())
	}

	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	name := flagSet.Arg(0)
	raw, err := readInput(name, stdin)
	if err != nil {
		return err
	}

	data, compression, err := payload.Decode(raw)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	logger.Debug("input loaded",
		"path", name,
		"bytes", len(raw),
		"compression", compression.String(),
		"decoded_bytes", len(data),
	)

	if opts.tile {
		tile, err := vectortile.ReadTile(data)
		if err != nil {
			return fmt.Errorf("decoding tile: %w", err)
		}
		logger.Debug("tile decoded", "layers", len(tile.Layers))
		return writeTile(stdout, format, tile)
	}

	fields, err := inspect.Decode(data, inspect.Options{MaxDepth: opts.maxDepth})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	logger.Debug("message decoded", "fields", len(fields))
	return writeFields(stdout, format, fields)
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}
