// Command widthgen derives a glyph width lookup table from an OpenType or
// TrueType font and emits it as Go source (or raw bytes with -raw). The
// table is meant for varfont.NewLookupTable, targeting a monospaced bitmap
// font that was rasterized from the same outline font.
//
// Example, a 6x10 bitmap font covering ASCII 0x20..0x7E drawn at 10 ppem:
//
//	widthgen -font Terminus.ttf -cell-width 6 -ppem 10 \
//	    -first 32 -count 95 -pkg fonts -var terminusWidths -o widths.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"

	"github.com/gogpu/varfont/widths"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "path to the OpenType/TrueType font (required)")
		cellWidth = flag.Int("cell-width", 0, "native cell width of the target bitmap font in pixels (required)")
		ppem      = flag.Int("ppem", 0, "pixels per em the bitmap font was drawn at (required)")
		first     = flag.Int("first", 0x20, "code point stored in glyph cell 0")
		count     = flag.Int("count", 95, "number of table entries")
		pkg       = flag.String("pkg", "fonts", "package name for the generated source")
		varName   = flag.String("var", "glyphWidths", "variable name for the generated table")
		output    = flag.String("o", "", "output file (default stdout)")
		raw       = flag.Bool("raw", false, "write the raw table bytes instead of Go source")
	)
	flag.Parse()

	if *fontPath == "" || *cellWidth <= 0 || *ppem <= 0 || *count <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("widthgen: %v", err)
	}

	table, err := widths.FromOpenType(data, widths.Geometry{
		CellWidth: *cellWidth,
		PPEM:      *ppem,
	}, *count, func(i int) rune {
		return rune(*first + i)
	})
	if err != nil {
		log.Fatalf("widthgen: %v", err)
	}

	var out []byte
	if *raw {
		out = table
	} else {
		out, err = goSource(*pkg, *varName, *fontPath, table)
		if err != nil {
			log.Fatalf("widthgen: %v", err)
		}
	}

	if *output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("widthgen: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		log.Fatalf("widthgen: %v", err)
	}
}

// goSource renders the table as a gofmt'ed Go declaration.
func goSource(pkg, varName, fontPath string, table []byte) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by widthgen from %s. DO NOT EDIT.\n\n", fontPath)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s maps glyph indices to visible widths in pixels.\n", varName)
	fmt.Fprintf(&buf, "var %s = []byte{", varName)
	for i, w := range table {
		if i%16 == 0 {
			buf.WriteString("\n\t")
		} else {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d,", w)
	}
	buf.WriteString("\n}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
