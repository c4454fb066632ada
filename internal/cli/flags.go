package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/squarespiral/pkg/pipeline"
)

// renderFlags holds render flags shared by pack and render. Flags the user
// did not set leave the configured defaults alone.
type renderFlags struct {
	formats  string
	style    string
	width    float64
	height   float64
	margin   float64
	outline  bool
	centroid bool
	labels   bool
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple, handdrawn")
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "blank border as a fraction of the canvas")
	cmd.Flags().BoolVar(&f.outline, "outline", false, "draw the spiral outline")
	cmd.Flags().BoolVar(&f.centroid, "centroid", false, "mark the outline centroid")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "draw item labels")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("style") {
		opts.Style = f.style
	}
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("margin") {
		opts.Margin = f.margin
	}
	if flags.Changed("outline") {
		opts.Outline = f.outline
	}
	if flags.Changed("centroid") {
		opts.Centroid = f.centroid
	}
	if flags.Changed("labels") {
		opts.ShowLabels = f.labels
	}
}
