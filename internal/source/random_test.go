package source

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource walks through a fixed set of fractions of the requested range.
type fixedSource struct {
	calls int
}

var fractions = []float64{0, 0.25, 0.5, 0.75, 0.999}

func (s *fixedSource) Uniform(min, max float64) float64 {
	f := fractions[s.calls%len(fractions)]
	s.calls++
	return min + f*(max-min)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		arg         string
		expected    int
		expectedErr string
	}{
		{"2", 2, ""},
		{"1000", 1000, ""},
		{"1", 0, "number of places must be at least 2"},
		{"0", 0, "number of places must be at least 2"},
		{"-3", 0, "number of places must be at least 2"},
		{"abc", 0, "number of places must be an integer"},
		{"2.5", 0, "number of places must be an integer"},
		{"", 0, "number of places must be an integer"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.arg), func(t *testing.T) {
			n, err := ParseCount(tc.arg)
			if tc.expectedErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, n)
				return
			}

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tc.arg, argErr.Arg)
			assert.ErrorContains(t, err, tc.expectedErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	places, err := Generate(4, &fixedSource{}, NamingNumbered)
	require.NoError(t, err)
	require.Len(t, places, 4)

	// lat, lon draws alternate through the fractions
	assert.Equal(t, "Place 0", places[0].Name)
	assert.InDelta(t, -90, places[0].Loc.Lat, 1e-9)
	assert.InDelta(t, -90, places[0].Loc.Lon, 1e-9)
	assert.Equal(t, "Place 1", places[1].Name)
	assert.InDelta(t, 0, places[1].Loc.Lat, 1e-9)
	assert.InDelta(t, 90, places[1].Loc.Lon, 1e-9)
	assert.Equal(t, "Place 3", places[3].Name)

	for _, p := range places {
		require.NoError(t, p.Validate())
	}

	_, err = Generate(1, &fixedSource{}, NamingNumbered)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestGenerateGeneratedNames(t *testing.T) {
	places, err := Generate(10, NewRandomSource(7), NamingGenerated)
	require.NoError(t, err)

	for _, p := range places {
		assert.NotEmpty(t, p.Name)
		assert.NotContains(t, p.Name, "Place ")
		require.NoError(t, p.Validate())
	}
}

func TestRandomSourceSeeded(t *testing.T) {
	a, err := Generate(50, NewRandomSource(42), NamingNumbered)
	require.NoError(t, err)
	b, err := Generate(50, NewRandomSource(42), NamingNumbered)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(50, NewRandomSource(43), NamingNumbered)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		require.NoError(t, p.Validate())
	}
}

func TestParseNaming(t *testing.T) {
	n, err := ParseNaming("")
	require.NoError(t, err)
	assert.Equal(t, NamingNumbered, n)

	n, err = ParseNaming("generated")
	require.NoError(t, err)
	assert.Equal(t, NamingGenerated, n)

	_, err = ParseNaming("random")
	require.Error(t, err)
}
