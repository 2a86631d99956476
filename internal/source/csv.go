package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/jszwec/csvutil"

	"place-distance/internal/models"
)

// Delimiter separates fields in a places file. The first line must be a
// header naming the Name, Latitude and Longitude columns.
const Delimiter = ','

// ReadCSV decodes places from r. path is only used in error messages.
func ReadCSV(ctx context.Context, r io.Reader, path string) ([]models.Place, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: errors.New("file is empty")}
		}
		return nil, csvError(path, err)
	}

	header := dec.Header()
	for _, col := range []string{fieldName, fieldLatitude, fieldLongitude} {
		if !slices.Contains(header, col) {
			return nil, &ParseError{Path: path, Line: 1, Field: col, Err: errors.New("missing column in header")}
		}
	}

	var places []models.Place
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, csvError(path, err)
		}

		line, _ := cr.FieldPos(0)
		p, err := rec.toPlace(path, line)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	return places, nil
}

func csvError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Path: path, Line: perr.Line, Err: perr.Err}
	}
	return &ParseError{Path: path, Err: fmt.Errorf("unable to parse csv: %w", err)}
}
