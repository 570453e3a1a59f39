package Euler1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofvm/fluids"
	"github.com/notargets/gofvm/riemann"
	"github.com/notargets/gofvm/sod_shock_tube"
)

func TestSodShockTube(t *testing.T) {
	// HLLC with Davis speeds against the analytic solution at t = 0.2
	{
		c := NewEuler(0.9, 0.2, 1, 512, fluids.NewIdealGas(1.4), FLUX_HLLC, riemann.SPEED_Davis)
		c.Run()
		Rho, P, _, _ := sod_shock_tube.SOD_calc(c.Time, c.X.DataP)
		l1 := 0.
		for i := range Rho {
			l1 += math.Abs(Rho[i] - c.Rho.DataP[i])
		}
		l1 /= float64(len(Rho))
		assert.Less(t, l1, 0.02)
		// Plateau values away from the smeared waves
		r := sod_shock_tube.SOD_regions(c.Time)
		iMid := int(0.5 * (r.X2 + r.X3) * float64(c.K))
		iPost := int(0.5 * (r.X3 + r.X4) * float64(c.K))
		assert.InDelta(t, r.RhoMiddle, c.Rho.DataP[iMid], 0.05)
		assert.InDelta(t, r.RhoPost, c.Rho.DataP[iPost], 0.05)
		pMid := c.EOS.GetFlowFunction(c.Rho.DataP[iMid], c.RhoU.DataP[iMid],
			c.Ener.DataP[iMid], fluids.StaticPressure)
		assert.InDelta(t, r.PPost, pMid, 0.03)
		assert.InDelta(t, r.PPost, P[iMid], 1.e-6)
	}
	// Conservation: boundary mass flux is zero until the waves arrive
	{
		c := NewEuler(0.9, 0.15, 1, 256, fluids.NewIdealGas(1.4), FLUX_HLL, riemann.SPEED_Einfeldt)
		mass0 := floats.Sum(c.Rho.DataP)
		ener0 := floats.Sum(c.Ener.DataP)
		c.Run()
		assert.InDelta(t, mass0, floats.Sum(c.Rho.DataP), 1.e-10)
		assert.InDelta(t, ener0, floats.Sum(c.Ener.DataP), 1.e-10)
	}
	// Every flux/estimator pairing runs stable and keeps density positive
	{
		for _, ft := range []FluxType{FLUX_Rusanov, FLUX_HLL, FLUX_HLLC} {
			for name, et := range riemann.EstimatorNames {
				c := NewEuler(0.8, 0.1, 1, 128, fluids.NewIdealGas(1.4), ft, et)
				c.Run()
				assert.Greater(t, c.Rho.Min(), 0., ft.Print()+"/"+name)
				for _, v := range c.Ener.DataP {
					assert.False(t, math.IsNaN(v), ft.Print()+"/"+name)
				}
			}
		}
	}
	// Flux selection by name
	{
		assert.Equal(t, FLUX_HLLC, NewFluxType("HLLC"))
		assert.Equal(t, "HLL", FLUX_HLL.Print())
		assert.Panics(t, func() { NewFluxType("osher") })
	}
}
