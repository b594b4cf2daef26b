package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ys4i/wavetray/internal/tray"
)

// xlsxHeaders are the columns of the layer report sheet.
var xlsxHeaders = []string{
	"Layer", "Bottom Z (mm)", "Top Z (mm)", "Contours",
	"Infill Segments", "Infill Length (mm)", "Total Length (mm)",
	"Min Wall Radius (mm)", "Max Wall Radius (mm)",
}

// ExportXLSX writes the per-layer statistics as a workbook.
func ExportXLSX(path string, summaries []tray.LayerSummary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no layer summaries to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Layers"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, s := range summaries {
		values := []interface{}{
			s.Layer, s.BottomZ, s.TopZ, s.Contours,
			s.InfillSegments, s.InfillLength, s.TotalLength,
			s.MinWallRadius, s.MaxWallRadius,
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

	return f.SaveAs(path)
}
