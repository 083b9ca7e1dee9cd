package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := NewVector(5).Linspace(0, 1)
	assert.Equal(t, 0., v.AtVec(0))
	assert.Equal(t, 1., v.AtVec(4))
	assert.InDelta(t, 0.25, v.AtVec(1), 1.e-12)

	// Copy does not alias the source
	w := v.Copy().Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, 0.5, v.AtVec(2))
	assert.Equal(t, 0.25, w.AtVec(2))

	assert.Equal(t, 0., w.Min())
	assert.Equal(t, 1., w.Max())
	assert.Equal(t, 0, w.MinInd())

	u := NewVector(3, []float64{3, -2, 7})
	assert.Equal(t, 1, u.MinInd())
	assert.Equal(t, -2., u.Min())
	assert.Equal(t, 7., u.Max())
}

func TestPOW(t *testing.T) {
	assert.Equal(t, 1., POW(3, 0))
	assert.Equal(t, 9., POW(3, 2))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.InDelta(t, math.Pow(1.7, 5), POW(1.7, 5), 1.e-12)
}
