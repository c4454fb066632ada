package geom

import "math"

// Rect is an axis-aligned rectangle. (X, Y) is the minimum corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Min returns the minimum corner.
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Max returns the maximum corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.Width, Y: r.Y + r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Area returns Width * Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Intersection returns the area shared by r and o. Rectangles that only
// touch along an edge or corner share zero area.
func (r Rect) Intersection(o Rect) float64 {
	lo := Max(r.Min(), o.Min())
	hi := Min(r.Max(), o.Max())
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Corners returns the four corners counter-clockwise from the minimum corner.
func (r Rect) Corners() []Vec2 {
	lo, hi := r.Min(), r.Max()
	return []Vec2{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
}

// Centroid returns the area-weighted centroid of the polygon vs.
//
// The outline must be simple and enclose a non-zero area. If the
// accumulated signed area is exactly zero the vertex mean is returned
// instead, so degenerate input never produces NaN.
func Centroid(vs []Vec2) Vec2 {
	var a, cx, cy float64
	n := len(vs)
	for i := 0; i < n; i++ {
		p, q := vs[i], vs[(i+1)%n]
		f := p.X*q.Y - q.X*p.Y
		a += f
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	if a == 0 {
		return mean(vs)
	}
	return Vec2{X: cx / (3 * a), Y: cy / (3 * a)}
}

func mean(vs []Vec2) Vec2 {
	if len(vs) == 0 {
		return Vec2{}
	}
	var s Vec2
	for _, v := range vs {
		s = Add(s, v)
	}
	return Scale(s, 1/float64(len(vs)))
}

// Area returns the signed shoelace area of vs. Counter-clockwise polygons
// have positive area.
func Area(vs []Vec2) float64 {
	var a float64
	n := len(vs)
	for i := 0; i < n; i++ {
		p, q := vs[i], vs[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Extent returns the axis-aligned bounding box of vs.
// An empty slice yields the zero Rect.
func Extent(vs []Vec2) Rect {
	if len(vs) == 0 {
		return Rect{}
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// PointIsInside reports whether p lies inside the polygon vs using the
// even-odd rule with a horizontal ray. Horizontal edges never toggle.
func PointIsInside(p Vec2, vs []Vec2) bool {
	inside := false
	n := len(vs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := vs[i], vs[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Simplify returns a copy of vs without vertices that are collinear with
// their neighbours or coincide with their predecessor. Polygons with fewer
// than four vertices are returned unchanged.
func Simplify(vs []Vec2) []Vec2 {
	if len(vs) < 4 {
		return append([]Vec2(nil), vs...)
	}
	out := make([]Vec2, 0, len(vs))
	for _, v := range vs {
		if len(out) > 0 && Near(out[len(out)-1], v) {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && Near(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}

	for changed := true; changed && len(out) > 3; {
		changed = false
		for i := 0; i < len(out) && len(out) > 3; i++ {
			prev := out[(i-1+len(out))%len(out)]
			next := out[(i+1)%len(out)]
			if Collinear(prev, out[i], next) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return out
}

// IsSimple reports whether no two non-adjacent edges of vs intersect.
// Edges that share an endpoint are allowed to touch.
func IsSimple(vs []Vec2) bool {
	n := len(vs)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := vs[i], vs[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1, b2 := vs[j], vs[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func orient(a, b, c Vec2) int {
	z := Cross(Sub(b, a), Sub(c, a)).Z
	switch {
	case math.Abs(z) < Epsilon:
		return 0
	case z > 0:
		return 1
	default:
		return -1
	}
}

func onSegment(a, b, p Vec2) bool {
	lo, hi := Min(a, b), Max(a, b)
	return p.X >= lo.X-Epsilon && p.X <= hi.X+Epsilon &&
		p.Y >= lo.Y-Epsilon && p.Y <= hi.Y+Epsilon
}
