// Package styles defines how squares, outlines and labels are drawn.
package styles

import (
	"bytes"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
)

// Style defines the visual appearance of a rendered spiral.
// All coordinates passed in are canvas coordinates.
type Style interface {
	// Name is the identifier accepted by --style and the API.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, fonts).
	RenderDefs(buf *bytes.Buffer)
	// RenderSquare writes the SVG for a single square.
	RenderSquare(buf *bytes.Buffer, s Square)
	// RenderOutline writes the closed outline polygon.
	RenderOutline(buf *bytes.Buffer, pts []geom.Vec2)
	// RenderCentroid writes a marker of radius r at c.
	RenderCentroid(buf *bytes.Buffer, c geom.Vec2, r float64)
	// RenderText writes the label of a square.
	RenderText(buf *bytes.Buffer, s Square)
}

// Square contains all data needed to render one placed square.
type Square struct {
	ID         string  // Stable identifier ("sq-<index>")
	Label      string  // Display text
	Value      float64 // Source magnitude, shown in the tooltip
	X, Y, W, H float64 // Canvas top-left corner and dimensions
	CX, CY     float64 // Center coordinates (for text)
}
