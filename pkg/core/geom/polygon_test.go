package geom

import (
	"math"
	"testing"
)

var (
	unitSquare = []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	// lShape is the union of [0,2]x[0,1] and [0,1]x[1,2].
	lShape = []Vec2{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}

	// uShape opens upward: [0,3]x[0,3] minus [1,2]x[1,3].
	uShape = []Vec2{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}}

	// arrow is a non-rectilinear concave polygon.
	arrow = []Vec2{{0, 0}, {4, 2}, {0, 4}, {1, 2}}

	triangle = []Vec2{{0, 0}, {4, 0}, {0, 4}}
)

func rotate(vs []Vec2, k int) []Vec2 {
	out := make([]Vec2, len(vs))
	for i := range vs {
		out[i] = vs[(i+k)%len(vs)]
	}
	return out
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vec2
		want Vec2
	}{
		{"unit square", unitSquare, V2(0.5, 0.5)},
		{"l shape", lShape, V2(5.0/6, 5.0/6)},
		{"triangle", triangle, V2(4.0/3, 4.0/3)},
		{"u shape", uShape, V2(1.5, 19.0/14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := range tt.vs {
				got := Centroid(rotate(tt.vs, k))
				if !approxVec(got, tt.want) {
					t.Errorf("Centroid(rotation %d) = %v, want %v", k, got, tt.want)
				}
			}
		})
	}
}

func TestCentroidDegenerate(t *testing.T) {
	line := []Vec2{{0, 0}, {1, 0}, {2, 0}}
	got := Centroid(line)
	if !IsFinite(got) {
		t.Fatalf("Centroid(line) = %v, want finite", got)
	}
	if !approxVec(got, V2(1, 0)) {
		t.Errorf("Centroid(line) = %v, want vertex mean (1,0)", got)
	}
	if got := Centroid(nil); got != (Vec2{}) {
		t.Errorf("Centroid(nil) = %v, want zero", got)
	}
}

func TestArea(t *testing.T) {
	if got := Area(unitSquare); got != 1 {
		t.Errorf("Area(unit square) = %v, want 1", got)
	}
	if got := Area(lShape); got != 3 {
		t.Errorf("Area(l shape) = %v, want 3", got)
	}
	if got := Area(uShape); got != 7 {
		t.Errorf("Area(u shape) = %v, want 7", got)
	}

	cw := []Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if got := Area(cw); got != -1 {
		t.Errorf("Area(clockwise square) = %v, want -1", got)
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vec2
		want Rect
	}{
		{"unit square", unitSquare, Rect{0, 0, 1, 1}},
		{"u shape", uShape, Rect{0, 0, 3, 3}},
		{"arrow", arrow, Rect{0, 0, 4, 4}},
		{"single point", []Vec2{{2, 3}}, Rect{2, 3, 0, 0}},
		{"negative coordinates", []Vec2{{-1, -2}, {1, -2}, {1, 0}}, Rect{-1, -2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := range tt.vs {
				if got := Extent(rotate(tt.vs, k)); got != tt.want {
					t.Errorf("Extent(rotation %d) = %v, want %v", k, got, tt.want)
				}
			}
		})
	}

	if got := Extent(nil); got != (Rect{}) {
		t.Errorf("Extent(nil) = %v, want zero Rect", got)
	}
}

// windingNumber is an independent containment reference based on the
// signed crossing count of upward and downward edges.
func windingNumber(p Vec2, vs []Vec2) bool {
	wn := 0
	n := len(vs)
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		side := Cross(Sub(b, a), Sub(p, a)).Z
		if a.Y <= p.Y {
			if b.Y > p.Y && side > 0 {
				wn++
			}
		} else if b.Y <= p.Y && side < 0 {
			wn--
		}
	}
	return wn != 0
}

func TestPointIsInsideMatchesReference(t *testing.T) {
	polygons := map[string][]Vec2{
		"unit square": unitSquare,
		"l shape":     lShape,
		"u shape":     uShape,
		"arrow":       arrow,
		"triangle":    triangle,
	}

	for name, vs := range polygons {
		t.Run(name, func(t *testing.T) {
			// Sample on a grid offset from every vertex and edge coordinate.
			for x := -1.0; x <= 5; x += 0.37 {
				for y := -1.0; y <= 5; y += 0.29 {
					p := V2(x+0.013, y+0.007)
					want := windingNumber(p, vs)
					if got := PointIsInside(p, vs); got != want {
						t.Errorf("PointIsInside(%v) = %v, reference %v", p, got, want)
					}
				}
			}
		})
	}
}

func TestPointIsInside(t *testing.T) {
	tests := []struct {
		name string
		p    Vec2
		vs   []Vec2
		want bool
	}{
		{"center of square", V2(0.5, 0.5), unitSquare, true},
		{"left of square", V2(-0.5, 0.5), unitSquare, false},
		{"below square", V2(0.5, -0.5), unitSquare, false},
		{"inside u notch", V2(1.5, 2), uShape, false},
		{"inside u arm", V2(0.5, 2), uShape, true},
		{"arrow dent", V2(0.5, 2), arrow, false},
		{"arrow body", V2(2, 2), arrow, true},
		{"empty polygon", V2(0, 0), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointIsInside(tt.p, tt.vs); got != tt.want {
				t.Errorf("PointIsInside(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointIsInsideRotationInvariant(t *testing.T) {
	p := V2(0.5, 1.5)
	for k := range lShape {
		if !PointIsInside(p, rotate(lShape, k)) {
			t.Errorf("rotation %d: point should be inside", k)
		}
	}
}

func TestSimplify(t *testing.T) {
	withMidpoints := []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {0, 2}, {0, 1}}
	got := Simplify(withMidpoints)
	want := []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("Simplify() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Simplify()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	dup := []Vec2{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	if got := Simplify(dup); len(got) != 4 {
		t.Errorf("Simplify(duplicates) = %v, want 4 vertices", got)
	}

	if got := Simplify(triangle); len(got) != 3 {
		t.Errorf("Simplify(triangle) = %v", got)
	}

	if math.Abs(Area(Simplify(withMidpoints))-Area(withMidpoints)) > 1e-12 {
		t.Error("Simplify changed the area")
	}
}

func TestIsSimple(t *testing.T) {
	bowtie := []Vec2{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	tests := []struct {
		name string
		vs   []Vec2
		want bool
	}{
		{"unit square", unitSquare, true},
		{"l shape", lShape, true},
		{"u shape", uShape, true},
		{"arrow", arrow, true},
		{"bowtie", bowtie, false},
		{"two points", []Vec2{{0, 0}, {1, 0}}, false},
		{"collinear midpoint", []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSimple(tt.vs); got != tt.want {
				t.Errorf("IsSimple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 2, Height: 2}

	tests := []struct {
		name string
		o    Rect
		want float64
	}{
		{"overlap", Rect{1, 1, 2, 2}, 1},
		{"contained", Rect{0.5, 0.5, 1, 1}, 1},
		{"touching edge", Rect{2, 0, 1, 1}, 0},
		{"touching corner", Rect{2, 2, 1, 1}, 0},
		{"disjoint", Rect{5, 5, 1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersection(tt.o); got != tt.want {
				t.Errorf("Intersection(%v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Intersection(r); got != tt.want {
				t.Errorf("Intersection is not symmetric: %v", got)
			}
		})
	}

	if c := r.Center(); c != V2(1, 1) {
		t.Errorf("Center() = %v", c)
	}
	if a := r.Area(); a != 4 {
		t.Errorf("Area() = %v", a)
	}
	if cs := r.Corners(); len(cs) != 4 || Area(cs) != 4 {
		t.Errorf("Corners() = %v, want CCW square of area 4", cs)
	}
}
