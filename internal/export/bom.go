package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cicchiello/pi-nas/internal/panels"
)

// ExportCutList writes the panel set as an XLSX cut list: one row per
// panel with its material thickness, piece count, and blank size.
func ExportCutList(path string, set []*panels.Panel) error {
	if len(set) == 0 {
		return fmt.Errorf("no panels to list")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cut List"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Panel", "File", "Thickness (mm)", "Qty", "Width (mm)", "Height (mm)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for row, p := range set {
		values := []any{
			p.ID, p.Name, p.Filename, p.Thickness, p.Quantity,
			p.Canvas.Width, p.Canvas.Height,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "G", 14); err != nil {
		return err
	}

	return f.SaveAs(path)
}
