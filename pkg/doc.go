// Package pkg holds the squarespiral libraries.
//
// # Overview
//
// Squarespiral turns a list of positive values into a spiral of squares whose
// areas are proportional to the values. The pkg directory is organized as:
//
//  1. [core] - Geometry primitives and the spiral packer
//  2. [dataset] - Reading labelled values from JSON, YAML, CSV and XLSX
//  3. [layout] - The serialized packed spiral
//  4. [render] - SVG, PNG and PDF output
//  5. [pipeline] - Orchestration (pack → render) with caching
//  6. [cache], [store], [config] - Infrastructure
//
// # Architecture
//
//	dataset (values + labels)
//	         ↓
//	    [core/spiral] package (place squares against the outline)
//	         ↓
//	    [layout] package (squares, outline, centroid, extent)
//	         ↓
//	    [render] package (SVG, then PNG/PDF via rsvg-convert)
//
// # Quick Start
//
//	res, err := spiral.Pack([]float64{40, 25, 10}, 40)
//	if err != nil {
//	    return err
//	}
//	for _, sq := range res.Squares {
//	    fmt.Println(sq.X, sq.Y, sq.Width)
//	}
//
// [core]: github.com/matzehuels/squarespiral/pkg/core
// [dataset]: github.com/matzehuels/squarespiral/pkg/dataset
// [layout]: github.com/matzehuels/squarespiral/pkg/layout
// [render]: github.com/matzehuels/squarespiral/pkg/render
// [pipeline]: github.com/matzehuels/squarespiral/pkg/pipeline
// [cache]: github.com/matzehuels/squarespiral/pkg/cache
// [store]: github.com/matzehuels/squarespiral/pkg/store
// [config]: github.com/matzehuels/squarespiral/pkg/config
// [core/spiral]: github.com/matzehuels/squarespiral/pkg/core/spiral
package pkg
