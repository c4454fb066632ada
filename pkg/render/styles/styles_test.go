package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
)

func TestSimpleRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
}

func TestSimpleRenderSquare(t *testing.T) {
	tests := []struct {
		name     string
		square   Square
		contains []string
	}{
		{
			name:   "basic square",
			square: Square{ID: "sq-0", Label: "a", Value: 4, X: 10, Y: 20, W: 50, H: 50},
			contains: []string{
				`<rect`,
				`id="sq-0"`,
				`class="square"`,
				`x="10.00"`,
				`y="20.00"`,
				`width="50.00"`,
				`fill="white"`,
				`<title>a: 4</title>`,
			},
		},
		{
			name:     "special chars in label",
			square:   Square{ID: "sq-1", Label: "R&D <core>", W: 10, H: 10},
			contains: []string{`R&amp;D &lt;core&gt;`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Simple{}.RenderSquare(&buf, tt.square)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderSquare() missing %q in:\n%s", want, out)
				}
			}
		})
	}
}

func TestSimpleRenderOutlineAndCentroid(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderOutline(&buf, []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}})
	Simple{}.RenderCentroid(&buf, geom.Vec2{X: 3, Y: 4}, 2)
	out := buf.String()
	if !strings.Contains(out, `points="0.00,0.00 10.00,0.00 10.00,5.00"`) {
		t.Errorf("outline points missing:\n%s", out)
	}
	if !strings.Contains(out, `cx="3.00" cy="4.00" r="2.00"`) {
		t.Errorf("centroid missing:\n%s", out)
	}
}

func TestRenderTextSkipsSmallSquares(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Square{Label: "tiny", W: 5, H: 5})
	if buf.Len() != 0 {
		t.Errorf("label rendered on a 5px square: %s", buf.String())
	}
	Simple{}.RenderText(&buf, Square{Label: "big", W: 100, H: 100, CX: 50, CY: 50})
	if !strings.Contains(buf.String(), ">big</text>") {
		t.Errorf("label missing: %s", buf.String())
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want float64
	}{
		{"clamped to max", Square{Label: "a", W: 1000, H: 1000}, fontSizeMax},
		{"clamped to min", Square{Label: "a", W: 1, H: 1}, fontSizeMin},
		{"height bound", Square{Label: "a", W: 40, H: 40}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontSize(tt.sq); got != tt.want {
				t.Errorf("FontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	short := Square{Label: "ab", W: 100, H: 100}
	if got := TruncateLabel(short); got != "ab" {
		t.Errorf("TruncateLabel() = %q, want unchanged", got)
	}
	long := Square{Label: strings.Repeat("x", 200), W: 40, H: 40}
	got := TruncateLabel(long)
	if !strings.HasSuffix(got, "..") || len(got) >= 200 {
		t.Errorf("TruncateLabel() = %q, want truncated", got)
	}
}
