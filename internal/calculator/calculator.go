package calculator

import (
	"errors"
	"fmt"
	"math"
	"place-distance/internal/models"
)

type ProgressCallback func(current, total int, msg string)
type LoggerCallback func(msg string)

const progressEvery = 1000

// PairCount returns n choose 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs enumerates every unordered pair of distinct positions, i ascending
// then j ascending.
func Pairs(places []models.Place) []models.Pair {
	pairs := make([]models.Pair, 0, PairCount(len(places)))
	for i := 0; i < len(places); i++ {
		for j := i + 1; j < len(places); j++ {
			pairs = append(pairs, models.Pair{A: places[i], B: places[j], I: i, J: j})
		}
	}
	return pairs
}

// ComputePairs returns the great-circle distance of every pair produced by
// Pairs, in the same order.
func ComputePairs(places []models.Place, method Method, onProgress ProgressCallback, logger LoggerCallback) ([]models.Result, error) {
	if len(places) < 2 {
		return nil, fmt.Errorf("need at least 2 places, got %d", len(places))
	}

	dist, err := DistanceFunc(method)
	if err != nil {
		return nil, err
	}

	pairs := Pairs(places)
	total := len(pairs)
	results := make([]models.Result, total)

	if logger != nil {
		logger(fmt.Sprintf("Computing %d pairs for %d places (method: %s)", total, len(places), method))
	}

	for idx, p := range pairs {
		results[idx] = models.Result{
			Pair:       p,
			DistanceKm: dist(p.A.Loc, p.B.Loc),
		}

		if onProgress != nil && (idx+1)%progressEvery == 0 {
			onProgress(idx+1, total, "")
		}
	}

	if onProgress != nil {
		onProgress(total, total, "")
	}

	if logger != nil {
		logger("Calculation completed.")
	}
	return results, nil
}

// Summarize returns the average distance and the first result whose distance
// is closest to it.
func Summarize(results []models.Result) (models.Summary, error) {
	if len(results) == 0 {
		return models.Summary{}, errors.New("no results to summarize")
	}

	var sum float64
	for _, r := range results {
		sum += r.DistanceKm
	}
	avg := sum / float64(len(results))

	closest := 0
	best := math.MaxFloat64
	for i, r := range results {
		if d := math.Abs(r.DistanceKm - avg); d < best {
			best = d
			closest = i
		}
	}

	return models.Summary{
		Count:     len(results),
		AverageKm: avg,
		Closest:   results[closest],
	}, nil
}
