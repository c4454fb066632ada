// Package pipeline provides the pack → render pipeline for squarespiral.
//
// The CLI and the HTTP API both go through this package so they agree on
// defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Pack: Turn a dataset into a [layout.Layout] (spiral packing)
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Values:  []float64{40, 25, 10},
//	    Labels:  []string{"a", "b", "c"},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [layout.Layout]: github.com/matzehuels/squarespiral/pkg/layout.Layout
package pipeline

import (
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squarespiral/pkg/cache"
	"github.com/matzehuels/squarespiral/pkg/dataset"
	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = render.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = render.DefaultHeight

	// DefaultMargin is the default blank border ratio.
	DefaultMargin = render.DefaultMargin

	// DefaultStyle is the default visual style.
	DefaultStyle = render.StyleSimple

	// MaxItems bounds the dataset size accepted by the pipeline.
	MaxItems = 10000
)

// Format constants for output formats.
const (
	FormatSVG  = render.FormatSVG
	FormatPNG  = render.FormatPNG
	FormatPDF  = render.FormatPDF
	FormatJSON = render.FormatJSON
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Pack options
	Values   []float64 `json:"values,omitempty"`
	Labels   []string  `json:"labels,omitempty"`
	MaxValue float64   `json:"max_value,omitempty"` // 0 means the largest value
	Sort     bool      `json:"sort,omitempty"`      // Pack largest first
	Refresh  bool      `json:"refresh,omitempty"`   // Bypass cached layouts

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Margin     float64  `json:"margin,omitempty"`
	Outline    bool     `json:"outline,omitempty"`
	Centroid   bool     `json:"centroid,omitempty"`
	ShowLabels bool     `json:"show_labels,omitempty"`

	// Runtime options (not serialized)
	Dataset *dataset.Dataset `json:"-"` // Takes precedence over Values/Labels
	Logger  *log.Logger      `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the input as packed (sorted when Options.Sort is set).
	Dataset *dataset.Dataset

	// DatasetHash is the content hash of the unsorted input.
	DatasetHash string

	// Layout is the packed spiral.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SquareCount    int
	OutlineCount   int
	PackTime       time.Duration
	RenderTime     time.Duration
	ArtifactsBytes int
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return render.ValidateFormat(format)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if style != render.StyleSimple && style != render.StyleHanddrawn {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPack(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPack builds the dataset from Values and Labels when none was
// given, validates it and defaults MaxValue to its largest value.
func (o *Options) ValidateForPack() error {
	o.setLogger()
	if o.Dataset == nil {
		ds, err := dataset.New(o.Values, o.Labels)
		if err != nil {
			return err
		}
		o.Dataset = ds
	} else if err := o.Dataset.Validate(); err != nil {
		return err
	}
	if n := o.Dataset.Len(); n > MaxItems {
		return errors.New(errors.ErrCodeInvalidInput, "dataset has %d items (max %d)", n, MaxItems)
	}

	if o.MaxValue == 0 {
		o.MaxValue = o.Dataset.Max()
	}
	if err := errors.ValidateMagnitude("max value", o.MaxValue); err != nil {
		return err
	}
	if largest := o.Dataset.Max(); o.MaxValue < largest {
		o.Logger.Warn("max value is below the largest value; squares will exceed unit size",
			"max_value", o.MaxValue, "largest", largest)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.Margin < 0 || o.Margin >= 0.5 {
		return errors.New(errors.ErrCodeInvalidValue, "margin must be in [0, 0.5), got %v", o.Margin)
	}
	return nil
}

// HasFormat reports whether format was requested.
func (o *Options) HasFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}

// SVGOptions converts the render options for [render.RenderSVG].
func (o *Options) SVGOptions() ([]render.SVGOption, error) {
	style, err := render.ParseStyle(o.Style)
	if err != nil {
		return nil, err
	}
	opts := []render.SVGOption{
		render.WithStyle(style),
		render.WithSize(o.Width, o.Height),
		render.WithMargin(o.Margin),
	}
	if o.Outline {
		opts = append(opts, render.WithOutline())
	}
	if o.Centroid {
		opts = append(opts, render.WithCentroid())
	}
	if o.ShowLabels {
		opts = append(opts, render.WithLabels())
	}
	return opts, nil
}

// LayoutKeyOpts returns cache key options for packing.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{MaxValue: o.MaxValue, Sorted: o.Sort}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Style:    o.Style,
		Width:    o.Width,
		Height:   o.Height,
		Margin:   o.Margin,
		Outline:  o.Outline,
		Centroid: o.Centroid,
		Labels:   o.ShowLabels,
	}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// DatasetHash returns the content hash used in layout cache keys.
func DatasetHash(ds *dataset.Dataset) string {
	data, _ := json.Marshal(ds)
	return cache.Hash(data)
}
