package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		points := [][2]float64{
			{52.520008, 13.404954},
			{0, 0},
			{-90, 180},
			{41.3851, 2.1734},
		}
		for _, p := range points {
			assert.Zero(t, HaversineDistance(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(52.520008, 13.404954, 48.137154, 11.576124)
		d2 := HaversineDistance(48.137154, 11.576124, 52.520008, 13.404954)
		assert.Equal(t, d1, d2)
	})

	t.Run("berlin sanity route", func(t *testing.T) {
		// Berlin Mitte to a point ~2km east along the same parallel.
		d := HaversineDistance(52.520008, 13.404954, 52.520008, 13.434954)
		assert.Greater(t, d, 1.5)
		assert.Less(t, d, 2.5)
	})

	t.Run("berlin to munich is roughly 500km", func(t *testing.T) {
		d := HaversineDistance(52.520008, 13.404954, 48.137154, 11.576124)
		assert.InDelta(t, 504, d, 10)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(52.52, 13.40))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.1))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.03, Round(2.0345, 2))
	assert.Equal(t, 2.035, Round(2.0345, 3))
	assert.Equal(t, 10.0, Round(9.96, 1))
	assert.Equal(t, 0.0, Round(0.0004, 3))
}
