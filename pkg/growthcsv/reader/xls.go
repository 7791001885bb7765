package reader

import (
	"fmt"

	"github.com/extrame/xls"
)

// readXLS reads the first sheet of a legacy BIFF (.xls) workbook.
// Microplate readers commonly export this format.
func readXLS(path string) (Grid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	grid := make(Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			// Keep the slot so fixed row offsets stay valid.
			grid = append(grid, nil)
			continue
		}

		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}
