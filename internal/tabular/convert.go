// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular converts tabular data files between JSON and CSV.
//
// A JSON input is either an array of objects or a single object; the CSV
// column set is the sorted union of keys across all records. A CSV input is
// a header row plus data rows; every cell value stays text. Both directions
// are whole-file transformations with no partial-success state: validation
// failures leave the output file untouched.
package tabular

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// FormatError reports a JSON document whose top-level shape cannot be
// converted to a table.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

// Report summarizes a completed JSON-to-CSV conversion.
type Report struct {
	Rows    int
	Columns int
}

// JSONToCSV reads the JSON document at inPath and writes it as a CSV table
// to outPath. A single top-level object is treated as a one-record list; any
// other non-array root is a FormatError. An empty array prints a warning to
// w and writes no output file. Missing keys render as empty cells; the
// column order is the sorted union of keys across all records. On success
// the row and column counts are reported on w.
func JSONToCSV(inPath, outPath string, w io.Writer) (Report, error) {
	records, err := loadRecords(inPath)
	if err != nil {
		return Report{}, err
	}
	if len(records) == 0 {
		fmt.Fprintf(w, "warning: %s contains no records\n", inPath)
		return Report{}, nil
	}

	columns := collectColumns(records)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return Report{}, fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = cellText(rec[col])
		}
		if err := cw.Write(row); err != nil {
			return Report{}, fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Report{}, fmt.Errorf("encoding CSV: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return Report{}, fmt.Errorf("writing %s: %w", outPath, err)
	}

	report := Report{Rows: len(records), Columns: len(columns)}
	fmt.Fprintf(w, "converted %s -> %s\n", inPath, outPath)
	fmt.Fprintf(w, "  rows: %d, columns: %d\n", report.Rows, report.Columns)
	return report, nil
}

// CSVToJSON reads the CSV table at inPath and writes its data rows as an
// indented JSON array of objects to outPath. The first row is the header;
// every cell value stays a string. Short rows pad missing cells with empty
// strings and extra cells beyond the header are dropped. Returns the record
// count, also reported on w.
func CSVToJSON(inPath, outPath string, w io.Writer) (int, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		header = nil
	} else if err != nil {
		return 0, fmt.Errorf("reading %s: %w", inPath, err)
	}

	records := []map[string]string{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", inPath, err)
		}
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "converted %s -> %s\n", inPath, outPath)
	fmt.Fprintf(w, "  records: %d\n", len(records))
	return len(records), nil
}

// loadRecords decodes the JSON document at path into a record list. Numbers
// are kept as json.Number so their source text survives the conversion.
func loadRecords(path string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch v := root.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		records := make([]map[string]any, 0, len(v))
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, &FormatError{msg: fmt.Sprintf(
					"JSON must be a list of objects or a single object (element %d is not an object)", i)}
			}
			records = append(records, obj)
		}
		return records, nil
	default:
		return nil, &FormatError{msg: "JSON must be a list of objects or a single object"}
	}
}

// collectColumns returns the union of field names across all records,
// sorted lexicographically.
func collectColumns(records []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// cellText renders a JSON field value as CSV cell text. Strings pass through,
// numbers keep their source literal, null becomes an empty cell, and nested
// arrays or objects are written as compact JSON.
func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
