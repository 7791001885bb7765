// Package models defines data structures for growth-curve conversion.
package models

import "math"

// OutputRow is one long-format observation: a single well at a single
// timepoint.
type OutputRow struct {
	// Well is the microplate well identifier, e.g. "A1".
	Well string
	// TimeS is the elapsed time in seconds, rounded to 1 decimal.
	TimeS float64
	// TimeH is the elapsed time in hours, rounded to 3 decimals.
	TimeH float64
	// OD is the optical-density reading, rounded to 4 decimals.
	OD float64
}

// WellSeries is one well's complete OD series. Times are in minutes,
// shared across all wells of the plate, and len(OD) == len(Times).
type WellSeries struct {
	Well  string
	Times []float64
	OD    []float64
}

// Rows reshapes the series into long-format output rows with derived
// second/hour time units.
func (s WellSeries) Rows() []OutputRow {
	rows := make([]OutputRow, 0, len(s.Times))
	for i, min := range s.Times {
		rows = append(rows, OutputRow{
			Well:  s.Well,
			TimeS: roundTo(min*60, 1),
			TimeH: roundTo(min/60, 3),
			OD:    roundTo(s.OD[i], 4),
		})
	}
	return rows
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
