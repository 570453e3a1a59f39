package utils

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

/*
Array is a dense numeric array of arbitrary rank with chainable elementwise
operations. All inputs to a multi-operand method must share the receiver's
element count - the caller guarantees shape agreement, we only check length.

Mutating methods alter the receiver and return it to allow chaining, so use
Copy() first when the original values are still needed.
*/
type Array struct {
	DA    *sparse.DenseArray
	DataP []float64 // direct access to the flat element storage
}

func NewArray(shape ...int) (R Array) {
	da := sparse.ZerosDense(shape...)
	R = Array{
		DA:    da,
		DataP: da.Elements,
	}
	return
}

func NewArrayWithData(data []float64, shape ...int) (R Array) {
	R = NewArray(shape...)
	if len(data) != len(R.DataP) {
		err := fmt.Errorf("mismatch in allocation: NewArrayWithData shape = %v, len(data) = %v", shape, len(data))
		panic(err)
	}
	copy(R.DataP, data)
	return
}

// NewScalar wraps a single value as a length-1 array
func NewScalar(val float64) (R Array) {
	R = NewArrayWithData([]float64{val}, 1)
	return
}

func (m Array) Shape() []int { return m.DA.Shape }
func (m Array) Len() int     { return len(m.DataP) }

func (m Array) At(indices ...int) float64 { return m.DA.Get(indices...) }

func (m Array) Copy() (R Array) { // Does not change receiver
	R = NewArray(m.DA.Shape...)
	copy(R.DataP, m.DataP)
	return
}

func (m Array) Apply(f func(float64) float64) Array { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Array) Apply2(A Array, f func(x1, x2 float64) float64) Array { // Changes receiver
	m.checkLen(A)
	dA := A.DataP
	for i, val := range m.DataP {
		m.DataP[i] = f(val, dA[i])
	}
	return m
}

func (m Array) Apply3(A, B Array, f func(x1, x2, x3 float64) float64) Array { // Changes receiver
	m.checkLen(A, B)
	dA, dB := A.DataP, B.DataP
	for i, val := range m.DataP {
		m.DataP[i] = f(val, dA[i], dB[i])
	}
	return m
}

func (m Array) Apply4(A, B, C Array, f func(x1, x2, x3, x4 float64) float64) Array { // Changes receiver
	m.checkLen(A, B, C)
	dA, dB, dC := A.DataP, B.DataP, C.DataP
	for i, val := range m.DataP {
		m.DataP[i] = f(val, dA[i], dB[i], dC[i])
	}
	return m
}

func (m Array) Apply6(A, B, C, D, E Array, f func(x1, x2, x3, x4, x5, x6 float64) float64) Array { // Changes receiver
	m.checkLen(A, B, C, D, E)
	dA, dB, dC, dD, dE := A.DataP, B.DataP, C.DataP, D.DataP, E.DataP
	for i, val := range m.DataP {
		m.DataP[i] = f(val, dA[i], dB[i], dC[i], dD[i], dE[i])
	}
	return m
}

func (m Array) Apply8(A, B, C, D, E, F, G Array, f func(x1, x2, x3, x4, x5, x6, x7, x8 float64) float64) Array { // Changes receiver
	m.checkLen(A, B, C, D, E, F, G)
	dA, dB, dC, dD, dE, dF, dG := A.DataP, B.DataP, C.DataP, D.DataP, E.DataP, F.DataP, G.DataP
	for i, val := range m.DataP {
		m.DataP[i] = f(val, dA[i], dB[i], dC[i], dD[i], dE[i], dF[i], dG[i])
	}
	return m
}

func (m Array) Scale(a float64) Array { // Changes receiver
	floats.Scale(a, m.DataP)
	return m
}

func (m Array) AddScalar(a float64) Array { // Changes receiver
	floats.AddConst(a, m.DataP)
	return m
}

func (m Array) Add(A Array) Array { // Changes receiver
	m.checkLen(A)
	floats.Add(m.DataP, A.DataP)
	return m
}

func (m Array) Subtract(A Array) Array { // Changes receiver
	m.checkLen(A)
	floats.Sub(m.DataP, A.DataP)
	return m
}

func (m Array) ElMul(A Array) Array { // Changes receiver
	m.checkLen(A)
	floats.Mul(m.DataP, A.DataP)
	return m
}

func (m Array) ElDiv(A Array) Array { // Changes receiver
	m.checkLen(A)
	floats.Div(m.DataP, A.DataP)
	return m
}

func (m Array) Min() float64 { return floats.Min(m.DataP) }
func (m Array) Max() float64 { return floats.Max(m.DataP) }

func (m Array) checkLen(others ...Array) {
	for _, o := range others {
		if len(o.DataP) != len(m.DataP) {
			err := fmt.Errorf("mismatched element counts: receiver %v, operand %v", len(m.DataP), len(o.DataP))
			panic(err)
		}
	}
}
