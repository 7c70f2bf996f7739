// Package csvio reads CSV sources for conversion: byte decoding, tolerant
// record parsing and batch file discovery. Delimiter and encoding are
// settled here, before the mapping core sees any data.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Table is one parsed CSV source: a header row plus ordered data rows.
// Rows keep their raw width; padding and truncation happen in the row
// mapper.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses CSV text from r. Quoting is lenient and rows may have any
// width.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, cell := range header {
		header[i] = strings.TrimSpace(cell)
	}

	t := &Table{Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+2, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadFile loads, decodes and parses one CSV file. encoding may be empty
// for BOM-based detection.
func ReadFile(path string, delimiter rune, encoding string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	decoded, _, err := DecodeBytes(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t, err := Read(bytes.NewReader(decoded), delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// FindFiles resolves a source path to CSV files: the file itself, or every
// *.csv inside a directory in name order.
func FindFiles(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source path: %w", err)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(source), ".csv") {
			return nil, fmt.Errorf("not a CSV file: %s", source)
		}
		return []string{source}, nil
	}

	matches, err := filepath.Glob(filepath.Join(source, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", source)
	}
	sort.Strings(matches)
	return matches, nil
}
