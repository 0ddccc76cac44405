package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ToXLSX writes one worksheet per sheet, in order.
func ToXLSX(sheets []Sheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("add sheet %s: %w", sheet.Name, err)
		}

		for col, h := range sheet.Header {
			if err := setCell(f, sheet.Name, col+1, 1, h); err != nil {
				return err
			}
		}
		for r, row := range sheet.Rows {
			for col, value := range row {
				if err := setCell(f, sheet.Name, col+1, r+2, value); err != nil {
					return err
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx file: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
