// Package handdrawn provides a sketchy, paper-like style.
//
// Every square gets a deterministic grey and slightly wobbly edges derived
// from its ID and the style seed, so re-rendering the same layout produces
// byte-identical output.
package handdrawn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
	"github.com/matzehuels/squarespiral/pkg/render/styles"
)

const (
	fontFamily = `'xkcd Script', 'Comic Neue', 'Comic Sans MS', cursive`
	strokeInk  = "#2a2a2a"
	accentInk  = "#c0392b"
)

// HandDrawn draws squares with wobbly strokes and hashed grey fills.
type HandDrawn struct {
	seed uint64
}

// New returns the style with the default seed.
func New() HandDrawn { return HandDrawn{seed: 42} }

// WithSeed returns the style with a custom seed.
func WithSeed(seed uint64) HandDrawn { return HandDrawn{seed: seed} }

func (h HandDrawn) Name() string { return "handdrawn" }

func (h HandDrawn) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="paper" x="-5%" y="-5%" width="110%" height="110%">
      <feTurbulence type="fractalNoise" baseFrequency="0.04" numOctaves="3" seed="`)
	fmt.Fprintf(buf, "%d", h.seed%1000)
	buf.WriteString(`" result="noise"/>
      <feDisplacementMap in="SourceGraphic" in2="noise" scale="1.5"/>
    </filter>
  </defs>
`)
}

func (h HandDrawn) RenderSquare(buf *bytes.Buffer, s styles.Square) {
	fmt.Fprintf(buf, `  <path id="%s" class="square" d="%s" fill="%s" stroke="%s" stroke-width="1.6" stroke-linejoin="round" filter="url(#paper)">`,
		styles.EscapeXML(s.ID), wobbledRect(s.X, s.Y, s.W, s.H, h.seed, s.ID), greyForID(s.ID), strokeInk)
	fmt.Fprintf(buf, "<title>%s: %g</title></path>\n", styles.EscapeXML(s.Label), s.Value)
}

func (h HandDrawn) RenderOutline(buf *bytes.Buffer, pts []geom.Vec2) {
	fmt.Fprintf(buf, `  <path class="outline" d="%s" fill="none" stroke="%s" stroke-width="2.2" stroke-dasharray="8 5" stroke-linecap="round"/>`+"\n",
		wobbledPolygon(pts, h.seed), accentInk)
}

func (h HandDrawn) RenderCentroid(buf *bytes.Buffer, c geom.Vec2, r float64) {
	// A small hand-drawn cross.
	fmt.Fprintf(buf, `  <path class="centroid" d="M%.2f,%.2f L%.2f,%.2f M%.2f,%.2f L%.2f,%.2f" stroke="%s" stroke-width="2" stroke-linecap="round"/>`+"\n",
		c.X-r, c.Y-r, c.X+r, c.Y+r, c.X-r, c.Y+r, c.X+r, c.Y-r, accentInk)
}

func (h HandDrawn) RenderText(buf *bytes.Buffer, s styles.Square) {
	if !styles.ShowLabel(s) {
		return
	}
	rot := rotationFor(s.ID, s.W, s.H)
	fmt.Fprintf(buf, `  <text class="label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-size="%.1f" fill="%s" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
		s.CX, s.CY, fontFamily, styles.FontSize(s), strokeInk, rot, s.CX, s.CY, styles.EscapeXML(styles.TruncateLabel(s)))
}

// rotationFor returns a small deterministic tilt in degrees. Larger squares
// tilt less.
func rotationFor(id string, w, h float64) float64 {
	r := newRNG(hash(id, 7))
	limit := 3.0
	if side := math.Min(w, h); side > 200 {
		limit = 1.5
	}
	return jitter(r, limit)
}

var _ styles.Style = HandDrawn{}
