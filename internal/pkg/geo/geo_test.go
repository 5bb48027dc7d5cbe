//go:build unit

package geo_test

import (
	"testing"

	"arenaos/internal/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	venue := geo.Point{Lat: 34.0522, Lng: -118.2437}

	t.Run("same point", func(t *testing.T) {
		assert.Zero(t, geo.DistanceMeters(venue, venue))
	})

	t.Run("symmetric", func(t *testing.T) {
		other := geo.Point{Lat: 34.0622, Lng: -118.2537}
		assert.InDelta(t, geo.DistanceMeters(venue, other), geo.DistanceMeters(other, venue), 0.001)
	})

	t.Run("one degree latitude is about 111km", func(t *testing.T) {
		north := geo.Point{Lat: 35.0522, Lng: -118.2437}
		assert.InDelta(t, 111195, geo.DistanceMeters(venue, north), 200)
	})

	t.Run("short hop stays inside a city block", func(t *testing.T) {
		// ~0.001 degrees latitude is roughly 110m.
		near := geo.Point{Lat: 34.0532, Lng: -118.2437}
		d := geo.DistanceMeters(venue, near)
		assert.Greater(t, d, 100.0)
		assert.Less(t, d, 130.0)
	})
}
