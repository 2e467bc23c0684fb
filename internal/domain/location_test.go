package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceBetween(t *testing.T) {
	tests := []struct {
		name     string
		a        GeoLocation
		b        GeoLocation
		expected float64
	}{
		{
			name:     "same point",
			a:        GeoLocation{Latitude: 52.374, Longitude: 4.8897},
			b:        GeoLocation{Latitude: 52.374, Longitude: 4.8897},
			expected: 0,
		},
		{
			name:     "unit diagonal",
			a:        GeoLocation{Latitude: 1, Longitude: 1},
			b:        GeoLocation{Latitude: 0, Longitude: 0},
			expected: math.Sqrt(2),
		},
		{
			name:     "pythagorean triple",
			a:        GeoLocation{Latitude: 0, Longitude: 0},
			b:        GeoLocation{Latitude: 3, Longitude: 4},
			expected: 5,
		},
		{
			name:     "flat plane, no wrap at antimeridian",
			a:        GeoLocation{Latitude: 0, Longitude: 179},
			b:        GeoLocation{Latitude: 0, Longitude: -179},
			expected: 358,
		},
		{
			name:     "out of range values accepted",
			a:        GeoLocation{Latitude: 100, Longitude: 0},
			b:        GeoLocation{Latitude: -100, Longitude: 0},
			expected: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DistanceBetween(tt.a, tt.b))
		})
	}
}

func TestDistanceBetween_Symmetric(t *testing.T) {
	points := []GeoLocation{
		{Latitude: -37.3159, Longitude: 81.1496},
		{Latitude: 52.3740300, Longitude: 4.8896900},
		{Latitude: 0, Longitude: 0},
		{Latitude: -68.6102, Longitude: -47.0653},
	}

	for _, a := range points {
		assert.Equal(t, 0.0, DistanceBetween(a, a))
		for _, b := range points {
			assert.Equal(t, DistanceBetween(a, b), DistanceBetween(b, a))
		}
	}
}
