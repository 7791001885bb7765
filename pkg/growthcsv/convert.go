package growthcsv

import (
	"log"
	"os"
	"sort"

	"github.com/wzlab/growthcsv/pkg/growthcsv/models"
	"github.com/wzlab/growthcsv/pkg/growthcsv/output"
	"github.com/wzlab/growthcsv/pkg/growthcsv/parser"
	"github.com/wzlab/growthcsv/pkg/growthcsv/reader"
)

// Convert reads the plate-reader export at inputPath, reshapes it into
// long format and writes it to outputPath as CSV. It returns summary
// statistics over the emitted rows.
//
// Wells whose OD series is shorter than the time series are dropped
// silently. A run that yields no rows at all fails with ErrEmptyResult.
func Convert(inputPath, outputPath string, opts Options) (*models.Summary, error) {
	logf := progressLogger(opts)

	grid, err := reader.ReadGrid(inputPath)
	if err != nil {
		return nil, NewConversionError("read", err)
	}
	logf("loaded grid: %d rows x %d columns", grid.Rows(), grid.Cols())
	logf("layout: header row %d, data row %d, time column %d, data column %d",
		opts.Layout.HeaderRow+1, opts.Layout.DataStartRow+1,
		opts.Layout.TimeColumn+1, opts.Layout.DataStartColumn+1)

	wells := parser.ExtractWellNames(grid, opts.Layout)
	logf("found %d wells", len(wells))

	times := parser.ExtractTimes(grid, opts.Layout)
	logf("found %d timepoints", len(times))
	if len(times) > 0 {
		logf("time range: %.1f - %.1f minutes", times[0], times[len(times)-1])
	}

	var rows []models.OutputRow
	accepted := 0
	for i, well := range wells {
		od := parser.ExtractSeries(grid, opts.Layout, i, len(times))
		if len(od) != len(times) {
			continue
		}
		series := models.WellSeries{Well: well, Times: times, OD: od}
		rows = append(rows, series.Rows()...)
		if accepted < 5 {
			logf("well %s: %d points", well, len(od))
		}
		accepted++
	}

	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Well != rows[j].Well {
			return rows[i].Well < rows[j].Well
		}
		return rows[i].TimeS < rows[j].TimeS
	})

	if err := output.WriteCSV(outputPath, rows); err != nil {
		return nil, NewConversionError("write", err)
	}

	summary, err := models.Summarize(rows)
	if err != nil {
		return nil, err
	}
	logf("converted %d points: %d wells, %d timepoints, %.2f - %.2f h, OD %.4f - %.4f",
		summary.Points, summary.Wells, summary.Timepoints,
		summary.TimeMinH, summary.TimeMaxH, summary.ODMin, summary.ODMax)

	return summary, nil
}

// progressLogger returns the verbose log function, a no-op unless
// Verbose is set.
func progressLogger(opts Options) func(format string, v ...interface{}) {
	if !opts.Verbose {
		return func(string, ...interface{}) {}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return logger.Printf
}
