package dataset

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/squarespiral/pkg/errors"
)

func decodeCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode CSV dataset")
	}
	return fromRows(rows)
}

func decodeXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "workbook has no sheet %q", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %q", sheet)
	}
	return fromRows(rows)
}

// fromRows converts tabular rows. With one column every cell is a value;
// with two or more the first two columns are label and value. A first row
// whose value cell is not numeric is a header; its "label" and "value"
// cells (case-insensitive) pick the columns.
func fromRows(rows [][]string) (*Dataset, error) {
	rows = dropBlank(rows)
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset is empty")
	}

	labelCol, valueCol := -1, 0
	if width(rows) >= 2 {
		labelCol, valueCol = 0, 1
	}

	if _, err := parseNumber(cell(rows[0], valueCol)); err != nil {
		header := rows[0]
		rows = rows[1:]
		for i, h := range header {
			switch strings.ToLower(strings.TrimSpace(h)) {
			case "label", "name":
				labelCol = i
			case "value", "size", "amount":
				valueCol = i
			}
		}
	}

	ds := &Dataset{Items: make([]Item, 0, len(rows))}
	for i, row := range rows {
		v, err := parseNumber(cell(row, valueCol))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "row %d", i+1)
		}
		it := Item{Value: v}
		if labelCol >= 0 {
			it.Label = strings.TrimSpace(cell(row, labelCol))
		}
		ds.Items = append(ds.Items, it)
	}
	return ds, nil
}

func dropBlank(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func width(rows [][]string) int {
	var w int
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
