package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(id int64, name string, lat, lon float64) ServicePoint {
	return ServicePoint{
		ID:   id,
		Name: name,
		Address: Address{
			Geocode: GeoLocation{Latitude: lat, Longitude: lon},
		},
	}
}

func TestClosest(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		_, ok := Closest(GeoLocation{Latitude: 52.374, Longitude: 4.8897}, nil)
		assert.False(t, ok)

		_, ok = Closest(GeoLocation{}, []ServicePoint{})
		assert.False(t, ok)
	})

	t.Run("single point", func(t *testing.T) {
		match, ok := Closest(GeoLocation{}, []ServicePoint{point(1, "Depot A", 0, 0)})
		require.True(t, ok)
		assert.Equal(t, "Depot A", match.Point.Name)
		assert.Equal(t, 0.0, match.Distance)
	})

	t.Run("picks minimum distance", func(t *testing.T) {
		points := []ServicePoint{
			point(1, "B", 10, 10),
			point(2, "A", 0, 0),
		}

		match, ok := Closest(GeoLocation{Latitude: 1, Longitude: 1}, points)
		require.True(t, ok)
		assert.Equal(t, "A", match.Point.Name)
		assert.Equal(t, math.Sqrt(2), match.Distance)

		target := GeoLocation{Latitude: 1, Longitude: 1}
		for _, p := range points {
			assert.LessOrEqual(t, match.Distance, DistanceBetween(target, p.Address.Geocode))
		}
	})

	t.Run("tie keeps first in order", func(t *testing.T) {
		points := []ServicePoint{
			point(1, "far", 5, 5),
			point(2, "first", 1, 0),
			point(3, "second", 1, 0),
			point(4, "mirrored", -1, 0),
		}

		for i := 0; i < 10; i++ {
			match, ok := Closest(GeoLocation{}, points)
			require.True(t, ok)
			assert.Equal(t, int64(2), match.Point.ID)
		}
	})

	t.Run("NaN record does not win or break the scan", func(t *testing.T) {
		points := []ServicePoint{
			point(1, "broken", math.NaN(), 0),
			point(2, "near", 1, 1),
			point(3, "also broken", 0, math.NaN()),
			point(4, "nearest", 0.5, 0.5),
		}

		match, ok := Closest(GeoLocation{}, points)
		require.True(t, ok)
		assert.Equal(t, "nearest", match.Point.Name)
	})

	t.Run("only NaN records", func(t *testing.T) {
		points := []ServicePoint{
			point(1, "broken", math.NaN(), 0),
			point(2, "broken too", math.NaN(), 0),
		}

		match, ok := Closest(GeoLocation{}, points)
		require.True(t, ok)
		assert.Equal(t, int64(1), match.Point.ID)
		assert.True(t, math.IsNaN(match.Distance))
	})
}

func TestDistanceLess(t *testing.T) {
	nan := math.NaN()

	assert.True(t, distanceLess(1, 2))
	assert.False(t, distanceLess(2, 1))
	assert.False(t, distanceLess(1, 1))
	assert.False(t, distanceLess(nan, 1))
	assert.True(t, distanceLess(1, nan))
	assert.False(t, distanceLess(nan, nan))
	assert.True(t, distanceLess(1, math.Inf(1)))
}
