package inspect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anirudhraja/pbf/wire"
)

// WriteText prints fields in the layout of protoc --decode_raw: one field per
// line, embedded messages as indented blocks, fixed-width values in hex.
func WriteText(w io.Writer, fs Fields) error {
	bw := bufio.NewWriter(w)
	writeText(bw, fs, 0)
	return bw.Flush()
}

func writeText(w *bufio.Writer, fs Fields, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fs {
		switch f.WireType {
		case wire.WireVarint:
			fmt.Fprintf(w, "%s%d: %d\n", indent, f.Number, f.Varint)
		case wire.WireFixed64:
			fmt.Fprintf(w, "%s%d: 0x%016x\n", indent, f.Number, f.Fixed64)
		case wire.WireFixed32:
			fmt.Fprintf(w, "%s%d: 0x%08x\n", indent, f.Number, f.Fixed32)
		default:
			switch {
			case f.Message != nil:
				fmt.Fprintf(w, "%s%d {\n", indent, f.Number)
				writeText(w, f.Message, depth+1)
				fmt.Fprintf(w, "%s}\n", indent)
			case f.String != nil:
				fmt.Fprintf(w, "%s%d: %s\n", indent, f.Number, strconv.Quote(*f.String))
			default:
				fmt.Fprintf(w, "%s%d: %q\n", indent, f.Number, string(f.Bytes))
			}
		}
	}
}
