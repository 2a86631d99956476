package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"place-distance/internal/models"
)

const (
	fieldName      = "Name"
	fieldLatitude  = "Latitude"
	fieldLongitude = "Longitude"
)

// record is one raw place entry, before any numeric conversion.
type record struct {
	Name      string `csv:"Name"`
	Latitude  string `csv:"Latitude"`
	Longitude string `csv:"Longitude"`
}

func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, errors.New("missing value")
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", val)
	}
	return f, nil
}

func (r record) toPlace(path string, line int) (models.Place, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return models.Place{}, &ParseError{Path: path, Line: line, Field: fieldName, Err: errors.New("missing value")}
	}

	lat, err := parseCoord(r.Latitude)
	if err != nil {
		return models.Place{}, &ParseError{Path: path, Line: line, Field: fieldLatitude, Err: err}
	}

	lon, err := parseCoord(r.Longitude)
	if err != nil {
		return models.Place{}, &ParseError{Path: path, Line: line, Field: fieldLongitude, Err: err}
	}

	p := models.Place{Name: name, Loc: models.Coordinate{Lat: lat, Lon: lon}}
	if err := p.Validate(); err != nil {
		return models.Place{}, &ParseError{Path: path, Line: line, Err: err}
	}
	return p, nil
}
