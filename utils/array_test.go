package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray(t *testing.T) {
	// Shape and storage
	{
		A := NewArray(2, 3, 4)
		assert.Equal(t, []int{2, 3, 4}, A.Shape())
		assert.Equal(t, 24, A.Len())
		A.DataP[5] = 42
		assert.Equal(t, 42., A.DA.Elements[5])
	}
	// Copy is independent of the source
	{
		A := NewArrayWithData([]float64{1, 2, 3, 4}, 2, 2)
		B := A.Copy().Scale(2)
		assert.Equal(t, []float64{1, 2, 3, 4}, A.DataP)
		assert.Equal(t, []float64{2, 4, 6, 8}, B.DataP)
	}
	// Chained elementwise ops
	{
		A := NewArrayWithData([]float64{1, 4, 9}, 3)
		B := A.Copy().Apply(math.Sqrt).AddScalar(1)
		assert.Equal(t, []float64{2, 3, 4}, B.DataP)
	}
	// Two and three operand apply
	{
		A := NewArrayWithData([]float64{3, 5}, 2)
		B := NewArrayWithData([]float64{4, 12}, 2)
		assert.Equal(t, []float64{5, 13}, A.Copy().Apply2(B, math.Hypot).DataP)
		W := NewArrayWithData([]float64{0, 1}, 2)
		blend := A.Copy().Apply3(B, W, func(a, b, w float64) float64 {
			return (1-w)*a + w*b
		})
		assert.Equal(t, []float64{3, 12}, blend.DataP)
	}
	// Multi-operand apply
	{
		A := NewArrayWithData([]float64{1, 2}, 2)
		B := NewArrayWithData([]float64{10, 20}, 2)
		C := NewArrayWithData([]float64{100, 200}, 2)
		D := NewArrayWithData([]float64{1000, 2000}, 2)
		R := A.Copy().Apply4(B, C, D, func(a, b, c, d float64) float64 {
			return a + b + c + d
		})
		assert.Equal(t, []float64{1111, 2222}, R.DataP)
	}
	// Vectorized arithmetic
	{
		A := NewArrayWithData([]float64{1, 2, 3}, 3)
		B := NewArrayWithData([]float64{4, 10, 18}, 3)
		assert.Equal(t, []float64{4, 5, 6}, B.Copy().ElDiv(A).DataP)
		assert.Equal(t, []float64{4, 20, 54}, B.Copy().ElMul(A).DataP)
		assert.Equal(t, []float64{5, 12, 21}, B.Copy().Add(A).DataP)
		assert.Equal(t, []float64{3, 8, 15}, B.Copy().Subtract(A).DataP)
		assert.Equal(t, 4., B.Min())
		assert.Equal(t, 18., B.Max())
	}
	// Scalars are length-1 arrays
	{
		S := NewScalar(3.5)
		assert.Equal(t, []int{1}, S.Shape())
		assert.Equal(t, 3.5, S.At(0))
	}
	// Length mismatch is a programmer error
	{
		A := NewArray(3)
		B := NewArray(4)
		assert.Panics(t, func() { A.Add(B) })
	}
	// Allocation mismatch is a programmer error
	{
		assert.Panics(t, func() { NewArrayWithData([]float64{1, 2, 3}, 2, 2) })
	}
}
