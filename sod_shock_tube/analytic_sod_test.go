package sod_shock_tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticSOD(t *testing.T) {
	// Known post-shock values for the standard Sod problem
	{
		r := SOD_regions(0.2)
		assert.InDelta(t, 0.30313, r.PPost, 1.e-4)
		assert.InDelta(t, 0.92745, r.VPost, 1.e-4)
		assert.InDelta(t, 0.26557, r.RhoPost, 1.e-4)
		assert.InDelta(t, 0.42632, r.RhoMiddle, 1.e-4)
		// Wave positions are ordered
		assert.Less(t, r.X1, r.X2)
		assert.Less(t, r.X2, r.X3)
		assert.Less(t, r.X3, r.X4)
	}
	// Sampled profile hits the plateau values and the undisturbed states
	{
		r := SOD_regions(0.2)
		X := []float64{0.05, 0.5 * (r.X2 + r.X3), 0.5 * (r.X3 + r.X4), 0.95}
		Rho, P, U, E := SOD_calc(0.2, X)
		assert.Equal(t, 1., Rho[0])
		assert.Equal(t, 1., P[0])
		assert.Equal(t, 0., U[0])
		assert.InDelta(t, r.RhoMiddle, Rho[1], 1.e-6)
		assert.InDelta(t, r.RhoPost, Rho[2], 1.e-6)
		assert.InDelta(t, r.PPost, P[1], 1.e-6)
		assert.Equal(t, 0.125, Rho[3])
		assert.Equal(t, 0.1, P[3])
		// Specific internal energy follows from p and rho
		assert.InDelta(t, P[1]/(0.4*Rho[1]), E[1], 1.e-12)
	}
}
