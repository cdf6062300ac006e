package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensityFindsGroupsAndNoise(t *testing.T) {
	vectors := [][]float64{
		{0, 0}, {0, 0.1}, {0.1, 0},
		{10, 10}, {10, 10.1}, {10.1, 10},
		{50, 50}, // far from everything
	}
	labels, err := NewDensity(2).Assign(vectors, 0)
	require.NoError(t, err)
	require.Len(t, labels, len(vectors))

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, -1}, labels)
}

func TestDensityIdenticalVectors(t *testing.T) {
	vectors := [][]float64{{1, 2}, {1, 2}, {1, 2}, {1, 2}}
	labels, err := NewDensity(2).Assign(vectors, 0)
	require.NoError(t, err)

	// Zero pairwise distance still joins everything into one cluster.
	assert.Equal(t, []int{0, 0, 0, 0}, labels)
}

func TestDensityDeterministic(t *testing.T) {
	vectors := [][]float64{
		{0, 0}, {0.05, 0}, {0, 0.05}, {5, 5}, {5.05, 5}, {9, 0},
	}
	d := NewDensity(2)
	first, err := d.Assign(vectors, 0)
	require.NoError(t, err)
	second, err := d.Assign(vectors, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDensityMinPointsFloor(t *testing.T) {
	d := NewDensity(0)
	labels, err := d.Assign([][]float64{{0, 0}, {0, 0.01}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, labels)
}
