package geom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func approxVec(a, b Vec2) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) }

func TestVectorArithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, -4)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", Add(a, b), V2(4, -2)},
		{"sub", Sub(a, b), V2(-2, 6)},
		{"mul", Mul(a, b), V2(3, -8)},
		{"scale", Scale(a, 0.5), V2(0.5, 1)},
		{"neg", Neg(a), V2(-1, -2)},
		{"min", Min(a, b), V2(1, -4)},
		{"max", Max(a, b), V2(3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if a != V2(1, 2) || b != V2(3, -4) {
		t.Error("operands were modified")
	}
}

func TestDotAndCross(t *testing.T) {
	if got := Dot(V2(1, 2), V2(3, 4)); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := Dot3(Vec3{1, 2, 3}, Vec3{4, 5, 6}); got != 32 {
		t.Errorf("Dot3 = %v, want 32", got)
	}
	c := Cross(V2(1, 0), V2(0, 1))
	if c != (Vec3{Z: 1}) {
		t.Errorf("Cross(x, y) = %v, want (0,0,1)", c)
	}
	if c := Cross(V2(0, 1), V2(1, 0)); c.Z != -1 {
		t.Errorf("Cross(y, x).Z = %v, want -1", c.Z)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero vector", V2(0, 0), V2(0, 0)},
		{"axis", V2(0, -5), V2(0, -1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !approxVec(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !IsFinite(got) {
				t.Errorf("Normalize(%v) is not finite", tt.in)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(V2(1, 1), V2(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(V2(2, 2), V2(2, 2)); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestCollinear(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Vec2
		want    bool
	}{
		{"horizontal", V2(0, 0), V2(1, 0), V2(5, 0), true},
		{"diagonal", V2(0, 0), V2(1, 1), V2(-2, -2), true},
		{"within tolerance", V2(0, 0), V2(1, 0), V2(2, 0.00001), true},
		{"right angle", V2(0, 0), V2(1, 0), V2(1, 1), false},
		{"just outside tolerance", V2(0, 0), V2(1, 0), V2(2, 0.001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collinear(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("Collinear(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestNear(t *testing.T) {
	if !Near(V2(1, 1), V2(1+Epsilon/2, 1)) {
		t.Error("points within Epsilon should be near")
	}
	if Near(V2(1, 1), V2(1+2*Epsilon, 1)) {
		t.Error("points 2*Epsilon apart should not be near")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(V2(1, -1)) {
		t.Error("IsFinite(1,-1) = false")
	}
	if IsFinite(V2(math.NaN(), 0)) || IsFinite(V2(0, math.Inf(-1))) {
		t.Error("IsFinite should reject NaN and Inf")
	}
}
