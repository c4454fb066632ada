// Package render turns packed layouts into images.
//
// # Overview
//
// [RenderSVG] draws a [layout.Layout] into an SVG document. The layout's
// extent is fitted into the requested viewport by a [Viewport], which also
// flips the y axis so that +y points up as in the packing coordinates.
// Squares, the outline polygon, the centroid marker and labels are drawn by
// a [styles.Style]:
//
//   - [styles.Simple]: flat grey squares with crisp strokes
//   - [handdrawn.HandDrawn]: wobbly strokes, hashed greys and a paper filter
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). [Render] dispatches on a format name:
//
//	svg := render.RenderSVG(l, render.WithStyle(handdrawn.New()))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [layout.Layout]: github.com/matzehuels/squarespiral/pkg/layout.Layout
// [handdrawn.HandDrawn]: github.com/matzehuels/squarespiral/pkg/render/styles/handdrawn.HandDrawn
package render
