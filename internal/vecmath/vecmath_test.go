package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"silentslides/internal/vecmath"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, vecmath.Cosine([]float64{1, 2}, []float64{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, vecmath.Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Equal(t, 0.0, vecmath.Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, vecmath.Distance([]float64{0, 0}, []float64{3, 4}), 1e-9)
	assert.Equal(t, 0.0, vecmath.Distance([]float64{1, 1}, []float64{1, 1}))
}

func TestCentroid(t *testing.T) {
	got := vecmath.Centroid([][]float64{{1, 0}, {0, 1}, {2, 2}})
	assert.Equal(t, []float64{1, 1}, got)
	assert.Nil(t, vecmath.Centroid(nil))
}
