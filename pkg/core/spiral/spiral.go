package spiral

import (
	"fmt"
	"math"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
	"github.com/matzehuels/squarespiral/pkg/errors"
)

// Square is an axis-aligned square; Width always equals Height.
type Square = geom.Rect

// Result is the output of [Pack].
type Result struct {
	// Squares holds one square per input value, in input order.
	Squares []Square `json:"squares"`
	// Outline is the final counter-clockwise polygon enclosing all squares.
	Outline []geom.Vec2 `json:"outline"`
	// Centroid is the area-weighted centroid of Outline.
	Centroid geom.Vec2 `json:"centroid"`
	// Extent is the bounding box of Outline.
	Extent geom.Rect `json:"extent"`
}

// Step describes the placement of a single square after the first.
type Step struct {
	Index   int       // Position of the value in the input
	Anchor  geom.Vec2 // Outline vertex the square grew from
	Inside  bool      // Whether the first candidate corner fell inside the outline
	Square  Square    // The emitted square
	Outline int       // Outline vertex count after the splice

	// Vertices is the outline after the splice. It is shared with the
	// packer and must not be modified.
	Vertices []geom.Vec2
}

// Option configures [Pack].
type Option func(*packer)

// WithStep registers fn to be called after every placed square (except the
// first). It is meant for tracing and tests.
func WithStep(fn func(Step)) Option {
	return func(p *packer) { p.onStep = fn }
}

type packer struct {
	onStep func(Step)
}

// Pack lays out one square per value. maxValue normalizes the scale.
//
// It returns an INVALID_INPUT or INVALID_VALUE error when values is empty or
// any magnitude is non-positive or non-finite; it never returns a partial
// result.
func Pack(values []float64, maxValue float64, opts ...Option) (Result, error) {
	if err := Validate(values, maxValue); err != nil {
		return Result{}, err
	}
	var p packer
	for _, opt := range opts {
		opt(&p)
	}
	return p.pack(values, maxValue), nil
}

// Validate checks the preconditions of [Pack].
func Validate(values []float64, maxValue float64) error {
	if len(values) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "values must not be empty")
	}
	if err := errors.ValidateMagnitude("max value", maxValue); err != nil {
		return err
	}
	for i, v := range values {
		if err := errors.ValidateMagnitude(fmt.Sprintf("values[%d]", i), v); err != nil {
			return err
		}
	}
	return nil
}

func (p *packer) pack(values []float64, maxValue float64) Result {
	scale := math.Sqrt(maxValue)
	s0 := math.Sqrt(values[0]) / scale

	squares := make([]Square, 0, len(values))
	squares = append(squares, Square{Width: s0, Height: s0})
	outline := []geom.Vec2{{}, {X: s0}, {X: s0, Y: s0}, {Y: s0}}

	for i, v := range values[1:] {
		var sq Square
		var step Step
		outline, sq, step = place(outline, math.Sqrt(v)/scale)
		squares = append(squares, sq)
		if p.onStep != nil {
			step.Index = i + 1
			p.onStep(step)
		}
	}

	return Result{
		Squares:  squares,
		Outline:  outline,
		Centroid: geom.Centroid(outline),
		Extent:   geom.Extent(outline),
	}
}

// place attaches a square of the given side to outline and returns the
// spliced outline.
func place(outline []geom.Vec2, size float64) ([]geom.Vec2, Square, Step) {
	k := len(outline)
	idx := nearest(outline, geom.Centroid(outline))
	v0 := outline[idx]
	n1 := outline[(idx+1)%k]
	n2 := outline[(idx-1+k)%k]

	d1 := geom.Normalize(geom.Sub(n1, v0))
	v1 := geom.Add(v0, geom.Scale(d1, size))
	d2 := secondDirection(geom.Normalize(geom.Sub(n2, v0)), d1)

	// The outline is still unmodified here.
	v2 := geom.Sub(v0, geom.Scale(d2, size))
	inside := geom.PointIsInside(v2, outline)
	if inside {
		v2 = geom.Add(v0, geom.Scale(d2, size))
	}
	v3 := geom.Add(v0, geom.Add(geom.Sub(v2, v0), geom.Sub(v1, v0)))

	lo := geom.Min(v0, geom.Min(v1, v2))
	sq := Square{X: lo.X, Y: lo.Y, Width: size, Height: size}

	insert := make([]geom.Vec2, 0, 3)
	if !geom.Near(v2, n2) {
		insert = append(insert, v2)
	}
	insert = append(insert, v3)
	if !geom.Near(v1, n1) {
		insert = append(insert, v1)
	}

	next := make([]geom.Vec2, 0, k+len(insert))
	if inside {
		next = append(next, outline[:idx]...)
	} else {
		next = append(next, outline[:idx+1]...)
	}
	next = append(next, insert...)
	next = append(next, outline[idx+1:]...)

	return next, sq, Step{Anchor: v0, Inside: inside, Square: sq, Outline: len(next), Vertices: next}
}

// secondDirection returns d unless it points against d1, in which case d is
// rotated 90° clockwise.
func secondDirection(d, d1 geom.Vec2) geom.Vec2 {
	dot := geom.Dot(d, d1)
	if math.Abs(dot) < geom.Epsilon || dot >= 0 {
		return d
	}
	return geom.Vec2{X: d.Y, Y: -d.X}
}

// nearest returns the index of the vertex closest to c. Ties go to the
// earliest vertex.
func nearest(vs []geom.Vec2, c geom.Vec2) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range vs {
		if d := geom.Distance(v, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
