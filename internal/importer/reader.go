package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat means the file is neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrDecode means the file content is malformed within a supported
	// format. The pipeline is never reached; no partial state applies.
	ErrDecode = errors.New("malformed file content")
	// ErrEmptyFile means the file had no header row.
	ErrEmptyFile = errors.New("file has no rows")
)

// ReadFile decodes a tabular catalog file into raw rows, dispatching on
// the file extension. Decode failures abort the whole import: no
// partial row set is ever returned alongside an error.
func ReadFile(filename string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ReadCSV decodes CSV input. The delimiter is sniffed from the header
// line (comma, semicolon or tab) since exported catalogs vary by
// locale. The first row is the header; empty lines are skipped.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrDecode, err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyFile
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %v", ErrDecode, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return rowsFromRecords(records), nil
}

// ReadXLSX decodes the first worksheet of an XLSX workbook. The first
// row is the header.
func ReadXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrDecode, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read worksheet: %v", ErrDecode, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return rowsFromRecords(records), nil
}

// rowsFromRecords zips the header row with each data row. Short rows
// leave trailing fields absent; fully blank rows are dropped.
func rowsFromRecords(records [][]string) []RawRow {
	header := records[0]
	rows := []RawRow{}

	for _, rec := range records[1:] {
		row := make(RawRow, len(header))
		blank := true
		for i, key := range header {
			var v string
			if i < len(rec) {
				v = rec[i]
			}
			row[key] = v
			if strings.TrimSpace(v) != "" {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows
}

// sniffDelimiter picks the candidate delimiter occurring most often in
// the header line. Comma wins ties.
func sniffDelimiter(text string) rune {
	line, _, _ := strings.Cut(text, "\n")
	best, bestCount := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if c := strings.Count(line, string(cand)); c > bestCount {
			best, bestCount = cand, c
		}
	}
	return best
}
