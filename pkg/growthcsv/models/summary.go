package models

import "github.com/montanaflynn/stats"

// Summary aggregates the converted dataset for the progress report.
type Summary struct {
	// Points is the total number of output rows.
	Points int
	// Wells is the number of distinct wells that produced rows.
	Wells int
	// Timepoints is the number of distinct timepoints.
	Timepoints int
	// TimeMinH and TimeMaxH bound the elapsed time in hours.
	TimeMinH float64
	TimeMaxH float64
	// ODMin and ODMax bound the optical-density readings.
	ODMin float64
	ODMax float64
}

// Summarize computes summary statistics over the output rows.
// The rows slice must be non-empty.
func Summarize(rows []OutputRow) (*Summary, error) {
	wells := make(map[string]struct{})
	times := make(map[float64]struct{})
	hours := make(stats.Float64Data, 0, len(rows))
	ods := make(stats.Float64Data, 0, len(rows))

	for _, r := range rows {
		wells[r.Well] = struct{}{}
		times[r.TimeH] = struct{}{}
		hours = append(hours, r.TimeH)
		ods = append(ods, r.OD)
	}

	timeMin, err := hours.Min()
	if err != nil {
		return nil, err
	}
	timeMax, err := hours.Max()
	if err != nil {
		return nil, err
	}
	odMin, err := ods.Min()
	if err != nil {
		return nil, err
	}
	odMax, err := ods.Max()
	if err != nil {
		return nil, err
	}

	return &Summary{
		Points:     len(rows),
		Wells:      len(wells),
		Timepoints: len(times),
		TimeMinH:   timeMin,
		TimeMaxH:   timeMax,
		ODMin:      odMin,
		ODMax:      odMax,
	}, nil
}
