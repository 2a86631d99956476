package source

import (
	"context"
	"errors"

	"place-distance/internal/excel"
	"place-distance/internal/models"
)

// ReadXLSX reads places from columns A (name), B (latitude) and C
// (longitude) of a workbook sheet. Row 1 is a header.
func ReadXLSX(ctx context.Context, path, sheet string) ([]models.Place, error) {
	f, err := excel.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := excel.ReadRows(f, sheet)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	places := make([]models.Place, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(row.Cells) < 3 {
			return nil, &ParseError{Path: path, Line: row.Line, Err: errors.New("expected 3 columns: name, latitude, longitude")}
		}

		rec := record{Name: row.Cells[0], Latitude: row.Cells[1], Longitude: row.Cells[2]}
		p, err := rec.toPlace(path, row.Line)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}
