// Package layout defines the serialized form of a packed spiral.
//
// A [Layout] carries everything a renderer or API client needs: the squares
// with their labels and source values, the outline polygon, its centroid and
// extent, plus the packing parameters that produced them. It is written as
// JSON by the CLI and stored as BSON by the Mongo store.
package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/squarespiral/pkg/core/geom"
	"github.com/matzehuels/squarespiral/pkg/core/spiral"
	"github.com/matzehuels/squarespiral/pkg/dataset"
	"github.com/matzehuels/squarespiral/pkg/errors"
)

// Layout is the serialization format for a packed spiral.
type Layout struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero" bson:"created_at"`

	// Packing parameters
	MaxValue float64 `json:"max_value" bson:"max_value"`
	Sorted   bool    `json:"sorted,omitempty" bson:"sorted,omitempty"`

	// Geometry
	Squares  []Square    `json:"squares" bson:"squares"`
	Outline  []geom.Vec2 `json:"outline" bson:"outline"`
	Centroid geom.Vec2   `json:"centroid" bson:"centroid"`
	Extent   geom.Rect   `json:"extent" bson:"extent"`
}

// Square is a placed square with the item it represents.
type Square struct {
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
	Value float64 `json:"value" bson:"value"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	Size  float64 `json:"size" bson:"size"`
}

// Rect returns the square as a geom.Rect.
func (s Square) Rect() geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, Width: s.Size, Height: s.Size}
}

// FromResult combines a dataset with the packing result computed from its
// values. r.Squares must be index-aligned with ds.Items.
func FromResult(ds *dataset.Dataset, maxValue float64, sorted bool, r spiral.Result) (Layout, error) {
	if len(r.Squares) != ds.Len() {
		return Layout{}, errors.New(errors.ErrCodeInternal,
			"result has %d squares for %d items", len(r.Squares), ds.Len())
	}
	l := Layout{
		MaxValue: maxValue,
		Sorted:   sorted,
		Squares:  make([]Square, len(r.Squares)),
		Outline:  r.Outline,
		Centroid: r.Centroid,
		Extent:   r.Extent,
	}
	for i, sq := range r.Squares {
		it := ds.Items[i]
		l.Squares[i] = Square{Label: it.Label, Value: it.Value, X: sq.X, Y: sq.Y, Size: sq.Width}
	}
	return l, nil
}

// Labels returns the square labels, falling back to 1-based positions.
func (l Layout) Labels() []string {
	out := make([]string, len(l.Squares))
	for i, sq := range l.Squares {
		if sq.Label == "" {
			out[i] = fmt.Sprint(i + 1)
		} else {
			out[i] = sq.Label
		}
	}
	return out
}

// SelfIntersecting reports whether the outline crosses itself. Packing
// produces such an outline when a square lands in a notch too shallow for it,
// and the squares then overlap.
func (l Layout) SelfIntersecting() bool {
	return len(l.Outline) >= 3 && !geom.IsSimple(l.Outline)
}

// Validate checks structural integrity after decoding.
func (l Layout) Validate() error {
	if len(l.Squares) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "layout must contain squares")
	}
	if len(l.Outline) < 4 {
		return errors.New(errors.ErrCodeInvalidFormat, "layout outline has %d vertices, need at least 4", len(l.Outline))
	}
	for i, sq := range l.Squares {
		if err := errors.ValidateMagnitude(fmt.Sprintf("square %d size", i+1), sq.Size); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid layout")
		}
	}
	return nil
}

// Hash returns a content hash over the geometry and packing parameters.
// ID and CreatedAt do not contribute, so a layout hashes the same before and
// after it is stored.
func (l Layout) Hash() string {
	l.ID = ""
	l.CreatedAt = time.Time{}
	data, _ := json.Marshal(l)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Marshal serializes a Layout to indented JSON.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal decodes and validates a Layout.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
