package geom

import "math"

// Epsilon is the tolerance for treating two geometric quantities as equal.
const Epsilon = 1e-4

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a 3D vector. It only appears as the result of [Cross].
type Vec3 struct {
	X, Y, Z float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns a + b.
func Add(a, b Vec2) Vec2 { return Vec2{X: a.X + b.X, Y: a.Y + b.Y} }

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 { return Vec2{X: a.X - b.X, Y: a.Y - b.Y} }

// Mul returns the component-wise product of a and b.
func Mul(a, b Vec2) Vec2 { return Vec2{X: a.X * b.X, Y: a.Y * b.Y} }

// Scale multiplies both components of v by s.
func Scale(v Vec2, s float64) Vec2 { return Mul(v, Vec2{X: s, Y: s}) }

// Neg returns -v.
func Neg(v Vec2) Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Dot returns the 2D dot product.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Dot3 returns the 3D dot product.
func Dot3(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product of a and b lifted to 3D (z = 0).
// Only the Z component can be non-zero.
func Cross(a, b Vec2) Vec3 { return Vec3{Z: a.X*b.Y - a.Y*b.X} }

// Length returns |v|.
func Length(v Vec2) float64 { return math.Sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Normalize(v Vec2) Vec2 {
	lsq := Dot(v, v)
	if lsq == 0 {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 { return Length(Sub(a, b)) }

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 { return Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)} }

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 { return Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)} }

// Collinear reports whether a, b and c lie on one line within [Epsilon].
func Collinear(a, b, c Vec2) bool {
	return math.Abs(Cross(Sub(b, a), Sub(c, a)).Z) < Epsilon
}

// Near reports whether a and b are closer than [Epsilon].
func Near(a, b Vec2) bool { return Distance(a, b) < Epsilon }

// IsFinite reports whether both components are finite numbers.
func IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
