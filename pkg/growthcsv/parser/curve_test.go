package parser

import (
	"reflect"
	"testing"

	"github.com/wzlab/growthcsv/pkg/growthcsv/reader"
)

// buildGrid places wells, times and per-well OD columns at the default
// layout offsets.
func buildGrid(wells []string, times []string, series [][]string) reader.Grid {
	l := DefaultLayout()

	rowCount := l.DataStartRow + len(times)
	colCount := l.DataStartColumn + len(wells)
	grid := make(reader.Grid, rowCount)
	for i := range grid {
		grid[i] = make([]string, colCount)
	}

	for i, w := range wells {
		grid[l.HeaderRow][l.DataStartColumn+i] = w
	}
	for i, tv := range times {
		grid[l.DataStartRow+i][l.TimeColumn] = tv
	}
	for wellIdx, col := range series {
		for i, v := range col {
			grid[l.DataStartRow+i][l.DataStartColumn+wellIdx] = v
		}
	}
	return grid
}

func TestExtractWellNames(t *testing.T) {
	tests := []struct {
		name     string
		wells    []string
		expected []string
	}{
		{"contiguous", []string{"A1", "A2", "A3"}, []string{"A1", "A2", "A3"}},
		{"trims whitespace", []string{" A1 ", "A2\t"}, []string{"A1", "A2"}},
		{"stops at gap", []string{"A1", "", "A3"}, []string{"A1"}},
		{"empty header", []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildGrid(tt.wells, nil, nil)
			got := ExtractWellNames(grid, DefaultLayout())
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractWellNames() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestExtractTimes(t *testing.T) {
	tests := []struct {
		name     string
		times    []string
		expected []float64
	}{
		{"numeric series", []string{"0", "30", "60.5"}, []float64{0, 30, 60.5}},
		{"stops at empty cell", []string{"0", "30", "", "90"}, []float64{0, 30}},
		{"stops at non-numeric cell", []string{"0", "30", "end", "90"}, []float64{0, 30}},
		{"no data", []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildGrid([]string{"A1"}, tt.times, nil)
			got := ExtractTimes(grid, DefaultLayout())
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractTimes() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestExtractSeries(t *testing.T) {
	wells := []string{"A1", "A2"}
	times := []string{"0", "30", "60"}
	series := [][]string{
		{"0.1", "0.15", "0.2"},
		{"0.11", "n/a", "0.21"},
	}
	grid := buildGrid(wells, times, series)
	l := DefaultLayout()

	got := ExtractSeries(grid, l, 0, 3)
	if expected := []float64{0.1, 0.15, 0.2}; !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractSeries(0) = %v, expected %v", got, expected)
	}

	// Unparseable cells are skipped, shortening the series.
	got = ExtractSeries(grid, l, 1, 3)
	if expected := []float64{0.11, 0.21}; !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractSeries(1) = %v, expected %v", got, expected)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-1.5", -1.5, true},
		{" 2.5 ", 2.5, true},
		{"hello", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseFloat(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("parseFloat(%q) = (%v, %v), expected (%v, %v)",
				tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}
