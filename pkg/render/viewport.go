package render

import (
	"math"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
)

// Viewport maps layout coordinates (y up) into an SVG canvas (y down).
// The layout extent is scaled uniformly to fit inside the canvas minus a
// margin and centered.
type Viewport struct {
	Width, Height float64
	Scale         float64
	extent        geom.Rect
	offX, offY    float64
}

// NewViewport fits extent into a width × height canvas. margin is the
// fraction of the shorter canvas side left blank on every edge.
func NewViewport(extent geom.Rect, width, height, margin float64) Viewport {
	pad := margin * math.Min(width, height)
	availW, availH := width-2*pad, height-2*pad

	scale := 1.0
	if extent.Width > 0 && extent.Height > 0 && availW > 0 && availH > 0 {
		scale = math.Min(availW/extent.Width, availH/extent.Height)
	}
	return Viewport{
		Width:  width,
		Height: height,
		Scale:  scale,
		extent: extent,
		offX:   (width - extent.Width*scale) / 2,
		offY:   (height - extent.Height*scale) / 2,
	}
}

// Apply maps a layout point to canvas coordinates.
func (v Viewport) Apply(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: v.offX + (p.X-v.extent.X)*v.Scale,
		Y: v.offY + (v.extent.Y+v.extent.Height-p.Y)*v.Scale,
	}
}

// ApplyRect maps a layout rectangle; the result's X, Y is the canvas
// top-left corner.
func (v Viewport) ApplyRect(r geom.Rect) geom.Rect {
	tl := v.Apply(geom.Vec2{X: r.X, Y: r.Y + r.Height})
	return geom.Rect{X: tl.X, Y: tl.Y, Width: r.Width * v.Scale, Height: r.Height * v.Scale}
}
