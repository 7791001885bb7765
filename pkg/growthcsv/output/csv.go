// Package output writes and validates the long-format CSV file.
package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/wzlab/growthcsv/pkg/growthcsv/models"
)

// Header is the required CSV column order.
var Header = []string{"Well", "Time_s", "Time_h", "OD"}

// WriteCSV writes the output rows to path as UTF-8 CSV with fixed
// decimal precision: Time_s 1, Time_h 3, OD 4.
func WriteCSV(path string, rows []models.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Well,
			strconv.FormatFloat(r.TimeS, 'f', 1, 64),
			strconv.FormatFloat(r.TimeH, 'f', 3, 64),
			strconv.FormatFloat(r.OD, 'f', 4, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
