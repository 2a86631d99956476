package source

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/goombaio/namegenerator"

	"place-distance/internal/models"
)

// MinPlaces is the smallest place count that yields at least one pair.
const MinPlaces = 2

// RandomSource draws uniformly distributed numbers from [min, max).
type RandomSource interface {
	Uniform(min, max float64) float64
}

type mathRandSource struct {
	r *rand.Rand
}

func (s *mathRandSource) Uniform(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// NewRandomSource returns a reproducible source for seed.
func NewRandomSource(seed uint64) RandomSource {
	return &mathRandSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededSource returns a source that differs between runs.
func NewTimeSeededSource() RandomSource {
	return NewRandomSource(uint64(time.Now().UTC().UnixNano()))
}

type Naming string

const (
	NamingNumbered  Naming = "numbered"
	NamingGenerated Naming = "generated"
)

func ParseNaming(s string) (Naming, error) {
	switch Naming(s) {
	case NamingNumbered, NamingGenerated:
		return Naming(s), nil
	case "":
		return NamingNumbered, nil
	default:
		return "", fmt.Errorf("unknown naming %q, expected %q or %q", s, NamingNumbered, NamingGenerated)
	}
}

// ParseCount validates the random mode argument.
func ParseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &InvalidArgumentError{Arg: arg, Reason: "number of places must be an integer"}
	}
	if n < MinPlaces {
		return 0, &InvalidArgumentError{Arg: arg, Reason: fmt.Sprintf("number of places must be at least %d", MinPlaces)}
	}
	return n, nil
}

// Generate builds n places with uniformly drawn coordinates.
func Generate(n int, rnd RandomSource, naming Naming) ([]models.Place, error) {
	if n < MinPlaces {
		return nil, &InvalidArgumentError{Arg: strconv.Itoa(n), Reason: fmt.Sprintf("number of places must be at least %d", MinPlaces)}
	}

	var names namegenerator.Generator
	if naming == NamingGenerated {
		names = namegenerator.NewNameGenerator(int64(rnd.Uniform(0, math.MaxInt32)))
	}

	places := make([]models.Place, n)
	for i := range places {
		name := fmt.Sprintf("Place %d", i)
		if names != nil {
			name = names.Generate()
		}
		places[i] = models.Place{
			Name: name,
			Loc: models.Coordinate{
				Lat: rnd.Uniform(-90, 90),
				Lon: rnd.Uniform(-180, 180),
			},
		}
	}
	return places, nil
}
