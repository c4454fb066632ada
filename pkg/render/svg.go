package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/render/styles"
)

// Defaults for [RenderSVG].
const (
	DefaultWidth  = 800.0
	DefaultHeight = 800.0
	DefaultMargin = 0.05
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style         styles.Style
	width, height float64
	margin        float64
	outline       bool
	centroid      bool
	labels        bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithOutline() SVGOption             { return func(r *svgRenderer) { r.outline = true } }
func WithCentroid() SVGOption            { return func(r *svgRenderer) { r.centroid = true } }
func WithLabels() SVGOption              { return func(r *svgRenderer) { r.labels = true } }

// WithSize sets the canvas size in pixels.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithMargin sets the blank border as a fraction of the shorter side.
func WithMargin(ratio float64) SVGOption {
	return func(r *svgRenderer) { r.margin = ratio }
}

// RenderSVG draws the layout. Squares are drawn in input order, followed by
// the outline, the centroid marker and the labels so that overlays stay on
// top.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	vp := NewViewport(l.Extent, r.width, r.height, r.margin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" data-style="%s">`+"\n",
		r.width, r.height, r.width, r.height, r.style.Name())

	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect class="background" width="%.1f" height="%.1f" fill="white"/>`+"\n", r.width, r.height)

	squares := buildSquares(l, vp)
	for _, s := range squares {
		r.style.RenderSquare(&buf, s)
	}
	if r.outline {
		// Collinear vertices left by the packer add nothing to the drawing.
		pts := geom.Simplify(l.Outline)
		for i, p := range pts {
			pts[i] = vp.Apply(p)
		}
		r.style.RenderOutline(&buf, pts)
	}
	if r.centroid {
		r.style.RenderCentroid(&buf, vp.Apply(l.Centroid), math.Max(3, math.Min(r.width, r.height)/150))
	}
	if r.labels {
		for _, s := range squares {
			r.style.RenderText(&buf, s)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:  styles.Simple{},
		width:  DefaultWidth,
		height: DefaultHeight,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildSquares(l layout.Layout, vp Viewport) []styles.Square {
	labels := l.Labels()
	out := make([]styles.Square, len(l.Squares))
	for i, sq := range l.Squares {
		c := vp.ApplyRect(sq.Rect())
		out[i] = styles.Square{
			ID:    fmt.Sprintf("sq-%d", i),
			Label: labels[i],
			Value: sq.Value,
			X:     c.X, Y: c.Y,
			W: c.Width, H: c.Height,
			CX: c.X + c.Width/2, CY: c.Y + c.Height/2,
		}
	}
	return out
}
