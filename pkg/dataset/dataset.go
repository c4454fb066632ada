package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/matzehuels/squarespiral/pkg/errors"
)

// Item is one labelled magnitude.
type Item struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Value float64 `json:"value" yaml:"value"`
}

// Dataset is an ordered collection of items.
type Dataset struct {
	Items []Item `json:"items" yaml:"items"`
}

// New builds a dataset from parallel slices. labels may be shorter than
// values (or nil); missing labels are left empty.
func New(values []float64, labels []string) (*Dataset, error) {
	if len(labels) > len(values) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d labels for %d values", len(labels), len(values))
	}
	items := make([]Item, len(values))
	for i, v := range values {
		items[i].Value = v
		if i < len(labels) {
			items[i].Label = labels[i]
		}
	}
	ds := &Dataset{Items: items}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate rejects empty datasets, non-positive or non-finite values and
// malformed labels.
func (d *Dataset) Validate() error {
	if d == nil || len(d.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dataset is empty")
	}
	for i, it := range d.Items {
		if err := errors.ValidateMagnitude(fmt.Sprintf("item %d", i+1), it.Value); err != nil {
			return err
		}
		if it.Label != "" {
			if err := errors.ValidateLabel(it.Label); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of items.
func (d *Dataset) Len() int { return len(d.Items) }

// Values returns the item values in order.
func (d *Dataset) Values() []float64 {
	vs := make([]float64, len(d.Items))
	for i, it := range d.Items {
		vs[i] = it.Value
	}
	return vs
}

// Labels returns the item labels in order. Unlabelled items get their
// 1-based position as label.
func (d *Dataset) Labels() []string {
	ls := make([]string, len(d.Items))
	for i, it := range d.Items {
		if it.Label == "" {
			ls[i] = strconv.Itoa(i + 1)
		} else {
			ls[i] = it.Label
		}
	}
	return ls
}

// Max returns the largest value, or 0 for an empty dataset.
func (d *Dataset) Max() float64 {
	var m float64
	for _, it := range d.Items {
		if it.Value > m {
			m = it.Value
		}
	}
	return m
}

// Sum returns the total of all values.
func (d *Dataset) Sum() float64 {
	var s float64
	for _, it := range d.Items {
		s += it.Value
	}
	return s
}

// SortDescending returns a copy ordered from largest to smallest value.
// Equal values keep their relative order.
func (d *Dataset) SortDescending() *Dataset {
	items := make([]Item, len(d.Items))
	copy(items, d.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})
	return &Dataset{Items: items}
}
