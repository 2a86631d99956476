package calculator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"place-distance/internal/models"
)

func makePlaces(n int) []models.Place {
	places := make([]models.Place, n)
	for i := range places {
		places[i] = models.Place{
			Name: fmt.Sprintf("Place %d", i),
			Loc:  models.Coordinate{Lat: float64(i%180) - 89.5, Lon: float64(i*7%360) - 179.5},
		}
	}
	return places
}

func TestPairs(t *testing.T) {
	for _, n := range []int{2, 3, 5, 17, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			pairs := Pairs(makePlaces(n))
			require.Len(t, pairs, n*(n-1)/2)
			assert.Equal(t, PairCount(n), len(pairs))

			seen := make(map[[2]int]bool)
			prev := [2]int{-1, -1}
			for _, p := range pairs {
				require.Less(t, p.I, p.J, "no self pairs, i < j")
				key := [2]int{p.I, p.J}
				require.False(t, seen[key], "duplicate pair %v", key)
				seen[key] = true

				// i ascending, then j ascending
				if p.I == prev[0] {
					assert.Greater(t, p.J, prev[1])
				} else {
					assert.Greater(t, p.I, prev[0])
				}
				prev = key
			}
		})
	}
}

func TestPairCount(t *testing.T) {
	assert.Equal(t, 0, PairCount(0))
	assert.Equal(t, 0, PairCount(1))
	assert.Equal(t, 1, PairCount(2))
	assert.Equal(t, 4950, PairCount(100))
}

func TestComputePairs(t *testing.T) {
	places := []models.Place{
		{Name: "LHR", Loc: lhr},
		{Name: "SYD", Loc: syd},
	}

	var logs []string
	results, err := ComputePairs(places, MethodCosine, nil, func(msg string) { logs = append(logs, msg) })
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "LHR", r.Pair.A.Name)
	assert.Equal(t, lhr, r.Pair.A.Loc)
	assert.Equal(t, "SYD", r.Pair.B.Name)
	assert.Equal(t, syd, r.Pair.B.Loc)
	assert.InDelta(t, 17016, r.DistanceKm, 17016*0.001)
	assert.NotEmpty(t, logs)
}

func TestComputePairsOrderAndProgress(t *testing.T) {
	places := makePlaces(60)

	var calls, last int
	results, err := ComputePairs(places, MethodS2, func(current, total int, _ string) {
		calls++
		last = current
		assert.Equal(t, PairCount(60), total)
	}, nil)
	require.NoError(t, err)

	pairs := Pairs(places)
	require.Len(t, results, len(pairs))
	for i, r := range results {
		assert.Equal(t, pairs[i], r.Pair)
	}

	// 1770 pairs: one tick at 1000, one final
	assert.Equal(t, 2, calls)
	assert.Equal(t, len(pairs), last)
}

func TestComputePairsErrors(t *testing.T) {
	_, err := ComputePairs(makePlaces(1), MethodCosine, nil, nil)
	require.ErrorContains(t, err, "need at least 2 places, got 1")

	_, err = ComputePairs(makePlaces(3), Method("flat"), nil, nil)
	require.ErrorContains(t, err, "unknown distance method")
}

func TestSummarize(t *testing.T) {
	mk := func(name string, d float64) models.Result {
		return models.Result{Pair: models.Pair{A: models.Place{Name: name}}, DistanceKm: d}
	}

	s, err := Summarize([]models.Result{mk("a", 100), mk("b", 290), mk("c", 310), mk("d", 500)})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 300, s.AverageKm, 1e-9)
	// b and c are equally close, the first one wins
	assert.Equal(t, "b", s.Closest.Pair.A.Name)

	_, err = Summarize(nil)
	require.Error(t, err)
}
