package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a modern (OOXML) workbook.
func readXLSX(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	return Grid(rows), nil
}
