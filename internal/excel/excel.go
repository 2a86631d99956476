package excel

import (
	"fmt"
	"place-distance/internal/models"

	"github.com/xuri/excelize/v2"
)

// Row is one worksheet row below the header. Line is the 1-based row number.
type Row struct {
	Line  int
	Cells []string
}

func OpenFile(filename string) (*excelize.File, error) {
	return excelize.OpenFile(filename)
}

// ReadRows returns every non-empty row of sheetName after the header row.
// An empty sheetName selects the first sheet of the workbook.
func ReadRows(f *excelize.File, sheetName string) ([]Row, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var out []Row
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if isBlank(row) {
			continue
		}
		out = append(out, Row{Line: i + 1, Cells: row})
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

var resultHeaders = []interface{}{
	"Place A", "Lat A", "Lon A",
	"Place B", "Lat B", "Lon B",
	"Distance (km)",
}

// WriteResult saves results to a new workbook at path, one row per pair in
// enumeration order.
func WriteResult(path string, data []models.Result, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	// Use Stream Writer for performance
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", resultHeaders); err != nil {
		return err
	}

	for i, r := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		a, b := r.Pair.A, r.Pair.B
		row := []interface{}{
			a.Name, a.Loc.Lat, a.Loc.Lon,
			b.Name, b.Loc.Lat, b.Loc.Lon,
			r.DistanceKm,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	// Delete default sheet if exists
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(path)
}
