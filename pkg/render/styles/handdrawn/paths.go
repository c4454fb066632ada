package handdrawn

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
)

// newRNG returns a PCG generator; equal seeds give equal wobble.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// jitter returns a value in [-amp, amp).
func jitter(r *rand.Rand, amp float64) float64 {
	return (r.Float64()*2 - 1) * amp
}

// wobbledRect draws a rectangle whose sides bow slightly.
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	corners := geom.Rect{X: x, Y: y, Width: w, Height: h}.Corners()
	return wobbled(corners, newRNG(hash(id, seed)), math.Min(2, 0.04*math.Min(w, h)))
}

// wobbledPolygon draws a closed polygon with bowed edges.
func wobbledPolygon(pts []geom.Vec2, seed uint64) string {
	if len(pts) == 0 {
		return ""
	}
	return wobbled(pts, newRNG(seed), 1.5)
}

func wobbled(pts []geom.Vec2, r *rand.Rand, amp float64) string {
	var b strings.Builder
	start := geom.Vec2{X: pts[0].X + jitter(r, amp/2), Y: pts[0].Y + jitter(r, amp/2)}
	fmt.Fprintf(&b, "M%.2f,%.2f", start.X, start.Y)
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		mid := geom.Scale(geom.Add(p, q), 0.5)
		ctrl := geom.Vec2{X: mid.X + jitter(r, amp), Y: mid.Y + jitter(r, amp)}
		end := start
		if i < len(pts)-1 {
			end = geom.Vec2{X: q.X + jitter(r, amp/2), Y: q.Y + jitter(r, amp/2)}
		}
		fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", ctrl.X, ctrl.Y, end.X, end.Y)
	}
	b.WriteString(" Z")
	return b.String()
}
