package models

import (
	"fmt"
	"math"
)

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return fmt.Errorf("latitude is not a finite number")
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("longitude is not a finite number")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180]", c.Lon)
	}
	return nil
}

func (p Place) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("empty place name")
	}
	return p.Loc.Validate()
}
