// Package dataset reads the labelled magnitudes that feed the packer.
//
// A [Dataset] is an ordered list of [Item] values. Readers exist for JSON,
// YAML, CSV and Excel workbooks; [Read] picks one by file extension:
//
//	ds, err := dataset.Read("sales.xlsx", dataset.WithSheet("2024"))
//	if err != nil {
//	    return err
//	}
//	result, err := spiral.Pack(ds.Values(), ds.Max())
//
// JSON and YAML accept either a bare list of numbers or a list of
// {label, value} objects, optionally wrapped in an "items" key. CSV and
// Excel accept one column (values) or two columns (label, value), with an
// optional header row naming the columns.
package dataset
