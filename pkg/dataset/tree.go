package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/squarespiral/pkg/errors"
)

func decodeJSON(r io.Reader) (*Dataset, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON dataset")
	}
	return fromTree(v)
}

func decodeYAML(r io.Reader) (*Dataset, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidInput, "dataset is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode YAML dataset")
	}
	return fromTree(v)
}

// fromTree converts a decoded JSON or YAML document. Accepted shapes are a
// list of numbers, a list of {label, value} maps, or either wrapped in a map
// under "items".
func fromTree(v any) (*Dataset, error) {
	if m, ok := v.(map[string]any); ok {
		items, found := m["items"]
		if !found {
			return nil, errors.New(errors.ErrCodeInvalidFormat, `dataset object has no "items" key`)
		}
		v = items
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "dataset must be a list, got %T", v)
	}

	ds := &Dataset{Items: make([]Item, 0, len(list))}
	for i, el := range list {
		it, err := itemFromTree(el)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "item %d", i+1)
		}
		ds.Items = append(ds.Items, it)
	}
	return ds, nil
}

func itemFromTree(v any) (Item, error) {
	if m, ok := v.(map[string]any); ok {
		raw, found := m["value"]
		if !found {
			return Item{}, fmt.Errorf(`missing "value"`)
		}
		val, err := number(raw)
		if err != nil {
			return Item{}, err
		}
		it := Item{Value: val}
		if l, ok := m["label"]; ok && l != nil {
			it.Label = fmt.Sprint(l)
		}
		return it, nil
	}
	val, err := number(v)
	if err != nil {
		return Item{}, err
	}
	return Item{Value: val}, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		return parseNumber(n)
	}
	return 0, fmt.Errorf("value %v is not a number", v)
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a number", s)
	}
	return f, nil
}
