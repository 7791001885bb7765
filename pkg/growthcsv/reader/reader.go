// Package reader loads a spreadsheet into a raw positional cell grid.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates the input file extension is not a
// readable workbook format.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Grid holds the raw cell values of the first sheet, addressed by
// (row, column) 0-based. No header promotion is applied; empty cells
// and ragged row widths are preserved as empty strings.
type Grid [][]string

// Cell returns the value at (row, col), or "" when the position lies
// outside the sheet's populated area.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Rows returns the number of populated rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the widest row.
func (g Grid) Cols() int {
	max := 0
	for _, r := range g {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// ReadGrid opens the workbook at path and returns the first sheet as
// a Grid. The format is chosen by file extension: .xlsx/.xlsm are read
// with excelize, legacy .xls with the BIFF reader.
func ReadGrid(path string) (Grid, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
