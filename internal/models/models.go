package models

type Coordinate struct {
	Lat float64
	Lon float64
}

type Place struct {
	Name string
	Loc  Coordinate
}

// Pair is an unordered combination of two places. I and J are the positions
// of A and B in the input sequence, with I < J.
type Pair struct {
	A Place
	B Place
	I int
	J int
}

type Result struct {
	Pair       Pair
	DistanceKm float64
}

// Summary holds the mean distance of a run and the result whose distance is
// nearest to that mean.
type Summary struct {
	Count     int
	AverageKm float64
	Closest   Result
}
