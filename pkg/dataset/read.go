package dataset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/squarespiral/pkg/errors"
)

// Format identifies an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset extension %q", filepath.Ext(path))
}

type readOptions struct {
	sheet string
}

// ReadOption configures [Read] and [Decode].
type ReadOption func(*readOptions)

// WithSheet selects the worksheet of an Excel workbook. The first sheet is
// used by default.
func WithSheet(name string) ReadOption {
	return func(o *readOptions) { o.sheet = name }
}

// Read loads and validates a dataset from path.
func Read(path string, opts ...ReadOption) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), format, opts...)
}

// Decode reads and validates a dataset in the given format.
func Decode(r io.Reader, format Format, opts ...ReadOption) (*Dataset, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		ds  *Dataset
		err error
	)
	switch format {
	case FormatJSON:
		ds, err = decodeJSON(r)
	case FormatYAML:
		ds, err = decodeYAML(r)
	case FormatCSV:
		ds, err = decodeCSV(r)
	case FormatXLSX:
		ds, err = decodeXLSX(r, o.sheet)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
