// Package parser extracts well names, timepoints and OD series from a
// microplate-reader export grid.
package parser

import (
	"strconv"
	"strings"

	"github.com/wzlab/growthcsv/pkg/growthcsv/reader"
)

// Layout holds the fixed cell offsets of the plate-reader export.
// All indices are 0-based.
type Layout struct {
	// HeaderRow is the row carrying the well names (A1..H12).
	HeaderRow int
	// DataStartRow is the first row of time/OD data.
	DataStartRow int
	// TimeColumn is the column holding elapsed time in minutes.
	TimeColumn int
	// DataStartColumn is the column of the first well's OD series.
	DataStartColumn int
}

// DefaultLayout returns the offsets of the standard OD600 export:
// well names on sheet row 9, data from row 10, time in column 2,
// first well in column 3.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:       8,
		DataStartRow:    9,
		TimeColumn:      1,
		DataStartColumn: 2,
	}
}

// ExtractWellNames scans the header row rightward from the first data
// column and collects trimmed well names. Scanning stops at the first
// empty cell; the export writes well columns contiguously.
func ExtractWellNames(g reader.Grid, l Layout) []string {
	var wells []string
	for col := l.DataStartColumn; ; col++ {
		name := strings.TrimSpace(g.Cell(l.HeaderRow, col))
		if name == "" {
			break
		}
		wells = append(wells, name)
	}
	return wells
}

// ExtractTimes scans the time column downward from the first data row
// and collects elapsed times in minutes. Scanning stops at the first
// empty or non-numeric cell, which marks the end of the series.
func ExtractTimes(g reader.Grid, l Layout) []float64 {
	var times []float64
	for row := l.DataStartRow; ; row++ {
		v, ok := parseFloat(g.Cell(row, l.TimeColumn))
		if !ok {
			break
		}
		times = append(times, v)
	}
	return times
}

// ExtractSeries reads the OD values of the well at wellIdx over the
// timeCount data rows. Unparseable and empty cells are skipped, not
// zero-filled, so a gappy column yields fewer values than timeCount.
func ExtractSeries(g reader.Grid, l Layout, wellIdx, timeCount int) []float64 {
	col := l.DataStartColumn + wellIdx
	var od []float64
	for i := 0; i < timeCount; i++ {
		if v, ok := parseFloat(g.Cell(l.DataStartRow+i, col)); ok {
			od = append(od, v)
		}
	}
	return od
}

// parseFloat parses a cell as a floating-point number.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
