package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/observability"
	"github.com/matzehuels/squarespiral/pkg/render"
)

// Render generates output artifacts in the requested formats. The SVG is
// drawn once and converted for PNG and PDF.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts, err := opts.SVGOptions()
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(l, svgOpts, opts.Formats)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(l layout.Layout, svgOpts []render.SVGOption, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	var svg []byte
	for _, format := range formats {
		if format != FormatJSON && svg == nil {
			svg = render.RenderSVG(l, svgOpts...)
		}

		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = svg
		case FormatPNG:
			data, err = render.ToPNG(svg, 2.0)
		case FormatPDF:
			data, err = render.ToPDF(svg)
		case FormatJSON:
			data, err = layout.Marshal(l)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
