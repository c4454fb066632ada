package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.375
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 32.0
)

// FontSize picks a label size that fits the square.
func FontSize(s Square) float64 { return fontSizeFor(s.W, s.H, len(s.Label)) }

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// ShowLabel reports whether the square is large enough to carry text.
func ShowLabel(s Square) bool {
	return s.Label != "" && min(s.W, s.H) >= 2*fontSizeMin
}

// TruncateLabel shortens the label to the characters that fit.
func TruncateLabel(s Square) string {
	label := []rune(s.Label)
	charWidth := FontSize(s) * fontCharWidth
	maxChars := max(3, int(s.W*fontWidthRatio/charWidth))
	if len(label) <= maxChars {
		return s.Label
	}
	return string(label[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
