package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ValidateCSV re-reads a written output file and checks it against the
// expected shape: all four required columns present, and Time_s,
// Time_h, OD numeric in every data row. A non-nil error is a warning
// to surface; the written file is left as is.
func ValidateCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("output file is empty")
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIdx[name] = i
	}
	for _, name := range Header {
		if _, ok := colIdx[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}

	for _, name := range Header[1:] {
		idx := colIdx[name]
		for rowNum, record := range records[1:] {
			if idx >= len(record) {
				return fmt.Errorf("row %d has no %s value", rowNum+2, name)
			}
			if _, err := strconv.ParseFloat(record[idx], 64); err != nil {
				return fmt.Errorf("column %s is not numeric at row %d: %q", name, rowNum+2, record[idx])
			}
		}
	}

	return nil
}
