package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	return Vector{
		V: mat.NewVecDense(n, data),
	}
}

func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Copy() Vector {
	var (
		data = v.V.RawVector().Data
		n    = v.V.Len()
	)
	vv := make([]float64, n)
	copy(vv, data)
	return NewVector(n, vv)
}

// Chainable (extended) methods
func (v Vector) Linspace(xmin, xmax float64) Vector {
	floats.Span(v.V.RawVector().Data, xmin, xmax)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// MinInd returns the index of the smallest element.
func (v Vector) MinInd() (imin int) {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		if val < data[imin] {
			imin = i
		}
	}
	return
}
