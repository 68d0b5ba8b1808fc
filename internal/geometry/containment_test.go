package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindContainerFirstMatchWins(t *testing.T) {
	plate := Box{X1: 10, Y1: 10, X2: 20, Y2: 20}
	vehicles := []VehicleTrack{
		{Box: Box{X1: 0, Y1: 0, X2: 30, Y2: 30}, TrackID: 1},
		{Box: Box{X1: 5, Y1: 5, X2: 25, Y2: 25}, TrackID: 2},
	}

	// Побеждает первый содержащий бокс, хотя второй прилегает теснее
	vehicle, ok := FindContainer(plate, vehicles)
	assert.True(t, ok)
	assert.Equal(t, int64(1), vehicle.TrackID)
	assert.Equal(t, Box{X1: 0, Y1: 0, X2: 30, Y2: 30}, vehicle.Box)
}

func TestFindContainerTouchingEdgesDoNotCount(t *testing.T) {
	plate := Box{X1: 0, Y1: 0, X2: 10, Y2: 10}
	vehicles := []VehicleTrack{
		{Box: Box{X1: 0, Y1: 0, X2: 20, Y2: 20}, TrackID: 7},
	}

	vehicle, ok := FindContainer(plate, vehicles)
	assert.False(t, ok)
	assert.Equal(t, NoContainer, vehicle)
}

func TestFindContainerMiss(t *testing.T) {
	plate := Box{X1: 100, Y1: 100, X2: 120, Y2: 120}
	vehicles := []VehicleTrack{
		{Box: Box{X1: 0, Y1: 0, X2: 30, Y2: 30}, TrackID: 1},
	}

	vehicle, ok := FindContainer(plate, vehicles)
	assert.False(t, ok)
	assert.Equal(t, int64(-1), vehicle.TrackID)
	assert.Equal(t, Box{X1: -1, Y1: -1, X2: -1, Y2: -1}, vehicle.Box)
}

func TestFindContainerEmptyVehicles(t *testing.T) {
	_, ok := FindContainer(Box{X1: 1, Y1: 1, X2: 2, Y2: 2}, nil)
	assert.False(t, ok)
}

func TestContainsStrict(t *testing.T) {
	outer := Box{X1: 0, Y1: 0, X2: 10, Y2: 10}

	assert.True(t, outer.ContainsStrict(Box{X1: 1, Y1: 1, X2: 9, Y2: 9}))
	assert.False(t, outer.ContainsStrict(Box{X1: 0, Y1: 1, X2: 9, Y2: 9}))
	assert.False(t, outer.ContainsStrict(Box{X1: 1, Y1: 1, X2: 10, Y2: 9}))
	assert.False(t, outer.ContainsStrict(outer))
}
