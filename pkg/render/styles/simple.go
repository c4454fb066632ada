package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
)

// Simple draws white squares with crisp dark strokes.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderSquare(buf *bytes.Buffer, s Square) {
	fmt.Fprintf(buf, `  <rect id="%s" class="square" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white" stroke="#333" stroke-width="1">`,
		EscapeXML(s.ID), s.X, s.Y, s.W, s.H)
	fmt.Fprintf(buf, "<title>%s: %g</title></rect>\n", EscapeXML(s.Label), s.Value)
}

func (Simple) RenderOutline(buf *bytes.Buffer, pts []geom.Vec2) {
	fmt.Fprintf(buf, `  <polygon class="outline" points="%s" fill="none" stroke="#d33" stroke-width="2" stroke-dasharray="6 4"/>`+"\n",
		PointList(pts))
}

func (Simple) RenderCentroid(buf *bytes.Buffer, c geom.Vec2, r float64) {
	fmt.Fprintf(buf, `  <circle class="centroid" cx="%.2f" cy="%.2f" r="%.2f" fill="#d33"/>`+"\n", c.X, c.Y, r)
}

func (Simple) RenderText(buf *bytes.Buffer, s Square) {
	if !ShowLabel(s) {
		return
	}
	fmt.Fprintf(buf, `  <text class="label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" fill="#333">%s</text>`+"\n",
		s.CX, s.CY, FontSize(s), EscapeXML(TruncateLabel(s)))
}

// PointList formats points for an SVG points attribute.
func PointList(pts []geom.Vec2) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

var _ Style = Simple{}
