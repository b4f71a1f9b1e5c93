// Package spreadsheet turns an uploaded workbook into the delimited text
// the extraction gateway consumes. Only the first sheet is read; the
// tabular structure itself is never interpreted here.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ToCSV renders the uploaded file to comma-delimited text. Files named
// *.csv are passed through as-is; anything else is opened as a workbook
// and its first sheet rendered row by row.
func ToCSV(filename string, data []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return string(data), nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("render csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("render csv: %w", err)
	}
	return buf.String(), nil
}
