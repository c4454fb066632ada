package render

import (
	"strings"

	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/render/styles"
	"github.com/matzehuels/squarespiral/pkg/render/styles/handdrawn"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Style names.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Formats lists the formats [Render] accepts.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ParseStyle returns the style registered under name. An empty name selects
// the simple style.
func ParseStyle(name string) (styles.Style, error) {
	switch strings.ToLower(name) {
	case "", StyleSimple:
		return styles.Simple{}, nil
	case StyleHanddrawn:
		return handdrawn.New(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want %s or %s)", name, StyleSimple, StyleHanddrawn)
}

// ValidateFormat checks a format name.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/json"
}

// Render produces the layout in the given format. PNG output uses scale 2.
func Render(l layout.Layout, format string, opts ...SVGOption) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return layout.Marshal(l)
	}
	svg := RenderSVG(l, opts...)
	switch format {
	case FormatPNG:
		return ToPNG(svg, 2.0)
	case FormatPDF:
		return ToPDF(svg)
	}
	return svg, nil
}
