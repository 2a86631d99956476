package calculator

import (
	"fmt"
	"math"
	"place-distance/internal/models"

	"github.com/golang/geo/s2"
	"github.com/umahmood/haversine"
)

// EarthRadiusKm is the mean Earth radius used by every method.
const EarthRadiusKm = 6371.0

// MaxDistanceKm is the distance between two antipodal points.
const MaxDistanceKm = math.Pi * EarthRadiusKm

type Method string

const (
	MethodCosine    Method = "cosine"
	MethodHaversine Method = "haversine"
	MethodS2        Method = "s2"
)

var Methods = []Method{MethodCosine, MethodHaversine, MethodS2}

func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown distance method %q, expected one of %v", s, Methods)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// CentralAngle returns the angle in radians subtended at the Earth's centre by
// a and b, using the spherical law of cosines.
func CentralAngle(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lon1 := toRadians(a.Lon)
	lat2 := toRadians(b.Lat)
	lon2 := toRadians(b.Lon)

	cos := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)

	// rounding can push the sum just outside acos' domain for identical or antipodal points
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}

// Distance computes the great-circle distance between a and b in kilometers.
func Distance(a, b models.Coordinate) float64 {
	return EarthRadiusKm * CentralAngle(a, b)
}

func haversineDistance(a, b models.Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	// the library does not clamp, nearly antipodal points can come back as NaN
	if math.IsNaN(km) {
		return MaxDistanceKm
	}
	return km
}

func s2Distance(a, b models.Coordinate) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return angle.Radians() * EarthRadiusKm
}

// DistanceFunc returns the kilometer distance function for m.
func DistanceFunc(m Method) (func(a, b models.Coordinate) float64, error) {
	switch m {
	case MethodCosine, "":
		return Distance, nil
	case MethodHaversine:
		return haversineDistance, nil
	case MethodS2:
		return s2Distance, nil
	default:
		return nil, fmt.Errorf("unknown distance method %q", m)
	}
}
